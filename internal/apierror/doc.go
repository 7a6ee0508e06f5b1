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

// Package apierror classifies errors produced while talking to the Trello API.
//
// HTTP responses carry their status code in a typed RequestError, so those
// are classified from the error chain. Transport failures (DNS, refused
// connections, timeouts) never reach the HTTP layer and are recognized from
// the error text and the net.Error interface instead.
package apierror
