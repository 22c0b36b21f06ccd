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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates a ContentRecord failed validation.
	ErrInvalidRecord = errors.New("invalid content record")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyURL indicates the URL field is empty.
	ErrEmptyURL = errors.New("url cannot be empty")

	// ErrEmptyBody indicates the Body field is empty.
	ErrEmptyBody = errors.New("body cannot be empty")

	// ErrEmptySourceDomain indicates the SourceDomain field is empty.
	ErrEmptySourceDomain = errors.New("source domain cannot be empty")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrInvalidClaim indicates a KnowledgeClaim failed validation.
	ErrInvalidClaim = errors.New("invalid knowledge claim")

	// ErrEmptySubject indicates the claim Subject field is empty.
	ErrEmptySubject = errors.New("claim subject cannot be empty")

	// ErrEmptyPredicate indicates the claim Predicate field is empty.
	ErrEmptyPredicate = errors.New("claim predicate cannot be empty")

	// ErrEmptyObject indicates the claim Object field is empty.
	ErrEmptyObject = errors.New("claim object cannot be empty")
)
