// Copyright 2025 Jono Stucken
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trello

import "context"

// CommentFetchOptions configures FetchAllComments.
type CommentFetchOptions struct {
	// PageSize caps the number of records requested per page.
	// Defaults to MaxCommentPageSize when zero or out of range.
	PageSize int

	// OnPage, if set, is called after each successfully fetched page with
	// the 1-based page number and the running record total. Used for
	// progress reporting and API call accounting.
	OnPage func(page, total int)
}

// FetchAllComments retrieves the complete set of commentCard actions made by
// username on the given board, walking as many pages as the API requires.
//
// Each page is requested with a "before" cursor equal to the date of the last
// (oldest) record of the previous page, so the walk moves strictly backward
// in time. A page shorter than the page size signals exhaustion; a page of
// exactly the page size always triggers another request. Records are
// accumulated in arrival order, which the API returns newest first, so the
// result is monotonically non-increasing by date.
//
// Any failure aborts the whole operation and discards records accumulated so
// far. There is no resume: a rerun starts from the newest comment again.
func FetchAllComments(ctx context.Context, client Client, username, boardID string, opts CommentFetchOptions) ([]CommentAction, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 || pageSize > MaxCommentPageSize {
		pageSize = MaxCommentPageSize
	}

	var all []CommentAction
	cursor := ""

	for page := 1; ; page++ {
		batch, err := client.ListMemberComments(ctx, username, CommentQuery{
			BoardID: boardID,
			Limit:   pageSize,
			Before:  cursor,
		})
		if err != nil {
			return nil, err
		}

		all = append(all, batch...)
		if opts.OnPage != nil {
			opts.OnPage(page, len(all))
		}

		if len(batch) < pageSize {
			break
		}
		cursor = batch[len(batch)-1].Date
	}

	return all, nil
}
