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

import (
	"fmt"
	"strconv"
	"time"

	trelloerrors "github.com/jstucken/trello-export/internal/errors"
)

// idTimestampLen is the number of leading identifier characters that encode
// the creation timestamp.
const idTimestampLen = 8

// CreationTime decodes the creation instant embedded in a Trello identifier.
// The first 8 characters of every board, card, and action id are a
// hexadecimal Unix timestamp in seconds. Characters beyond position 8 carry
// no time information and are ignored.
//
// The returned instant is explicitly UTC. Identifiers shorter than 8
// characters, or whose first 8 characters are not valid hexadecimal, fail
// with ErrMalformedID.
func CreationTime(id string) (time.Time, error) {
	if len(id) < idTimestampLen {
		return time.Time{}, fmt.Errorf("identifier %q is shorter than %d characters: %w",
			id, idTimestampLen, trelloerrors.ErrMalformedID)
	}

	secs, err := strconv.ParseUint(id[:idTimestampLen], 16, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("identifier %q has no hexadecimal timestamp prefix: %w",
			id, trelloerrors.ErrMalformedID)
	}

	return time.Unix(int64(secs), 0).UTC(), nil // #nosec G115 - 8 hex chars fit in int64
}
