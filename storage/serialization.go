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


package storage

import (
	"github.com/poiesic/curator/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalApprovalItem serializes an ApprovalItem to bytes.
func MarshalApprovalItem(item *core.ApprovalItem) []byte {
	buf := make([]byte, core.ApprovalItemMUS.Size(*item))
	core.ApprovalItemMUS.Marshal(*item, buf)
	return buf
}

// UnmarshalApprovalItem deserializes an ApprovalItem from bytes.
// The micro-precision codec restores timestamps in the local zone;
// they are normalized back to UTC here so stored values round-trip
// unchanged.
func UnmarshalApprovalItem(data []byte) (*core.ApprovalItem, error) {
	item, _, err := core.ApprovalItemMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	item.Record.PublishedAt = item.Record.PublishedAt.UTC()
	item.DecidedAt = item.DecidedAt.UTC()
	item.CreatedAt = item.CreatedAt.UTC()
	return &item, nil
}

// MarshalVectorChunk serializes a VectorChunk to bytes.
func MarshalVectorChunk(chunk *core.VectorChunk) []byte {
	buf := make([]byte, core.VectorChunkMUS.Size(*chunk))
	core.VectorChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalVectorChunk deserializes a VectorChunk from bytes.
func UnmarshalVectorChunk(data []byte) (*core.VectorChunk, error) {
	chunk, _, err := core.VectorChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	chunk.InsertedAt = chunk.InsertedAt.UTC()
	return &chunk, nil
}

// MarshalKnowledgeClaim serializes a KnowledgeClaim to bytes.
func MarshalKnowledgeClaim(claim *core.KnowledgeClaim) []byte {
	buf := make([]byte, core.KnowledgeClaimMUS.Size(*claim))
	core.KnowledgeClaimMUS.Marshal(*claim, buf)
	return buf
}

// UnmarshalKnowledgeClaim deserializes a KnowledgeClaim from bytes.
func UnmarshalKnowledgeClaim(data []byte) (*core.KnowledgeClaim, error) {
	claim, _, err := core.KnowledgeClaimMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	claim.Date = claim.Date.UTC()
	return &claim, nil
}

// MarshalSourceStat serializes a SourceStat to bytes.
func MarshalSourceStat(stat *core.SourceStat) []byte {
	buf := make([]byte, core.SourceStatMUS.Size(*stat))
	core.SourceStatMUS.Marshal(*stat, buf)
	return buf
}

// UnmarshalSourceStat deserializes a SourceStat from bytes.
func UnmarshalSourceStat(data []byte) (*core.SourceStat, error) {
	stat, _, err := core.SourceStatMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	stat.FirstSeen = stat.FirstSeen.UTC()
	stat.LastSeen = stat.LastSeen.UTC()
	return &stat, nil
}

// MarshalMinHashSnapshot serializes a MinHashSnapshot to bytes.
func MarshalMinHashSnapshot(snapshot *core.MinHashSnapshot) []byte {
	buf := make([]byte, core.MinHashSnapshotMUS.Size(*snapshot))
	core.MinHashSnapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalMinHashSnapshot deserializes a MinHashSnapshot from bytes.
func UnmarshalMinHashSnapshot(data []byte) (*core.MinHashSnapshot, error) {
	snapshot, _, err := core.MinHashSnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// MarshalEmbeddingSnapshot serializes an EmbeddingSnapshot to bytes.
func MarshalEmbeddingSnapshot(snapshot *core.EmbeddingSnapshot) []byte {
	buf := make([]byte, core.EmbeddingSnapshotMUS.Size(*snapshot))
	core.EmbeddingSnapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalEmbeddingSnapshot deserializes an EmbeddingSnapshot from bytes.
func UnmarshalEmbeddingSnapshot(data []byte) (*core.EmbeddingSnapshot, error) {
	snapshot, _, err := core.EmbeddingSnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
