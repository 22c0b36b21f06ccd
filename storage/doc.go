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


// Package storage provides the storage abstraction layer for curator.
//
// This package defines repository interfaces that decouple storage
// implementation from the curation logic, so different backends (BadgerDB,
// in-memory, etc.) can be used interchangeably:
//
//   - ApprovalRepository: durable approval-queue items
//   - ChunkRepository: vector chunks with similarity search
//   - ClaimRepository: structured knowledge claims with filtered queries
//   - SourceRepository: per-domain aggregates
//   - SnapshotRepository: novelty index snapshots
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines. Stores that back
// single-writer components (the novelty indexes, the approval queue)
// rely on the component to serialize mutations; the repositories
// themselves only guarantee per-call atomicity.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
