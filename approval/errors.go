// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package approval

import "errors"

var (
	// ErrDuplicatePending indicates the same URL and title pair is
	// already waiting in the queue.
	ErrDuplicatePending = errors.New("record already pending approval")

	// ErrItemNotFound indicates the queue holds no item for the key.
	ErrItemNotFound = errors.New("approval item not found")
)
