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

// Package output renders the results of the two command flows: a tabular
// card listing for the console, and a JSON-array comment export file.
//
// The export file name embeds the final record count
// ({username}_comments_{count}.json), so CommentWriter buffers records and
// persists exactly once on Close, atomically via a temp-file-and-rename.
// Nothing touches disk until the whole fetch has succeeded, which is what
// guarantees a failed run leaves no partial file behind.
//
// Example usage:
//
//	w := output.NewCommentWriter(".", "john_smith")
//	if err := w.WriteAll(comments); err != nil {
//	    return err
//	}
//	if err := w.Close(); err != nil {
//	    return err
//	}
//	fmt.Printf("Saved %s\n", w.Path())
package output
