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

package novelty

import (
	"hash/fnv"
	"strings"

	"github.com/poiesic/curator/core"
)

const (
	// ShingleSize is the sliding word-window width.
	ShingleSize = 3
	// SignatureSize is the number of independent hash functions per
	// signature. Equal positions between two signatures estimate the
	// Jaccard similarity of the underlying shingle sets.
	SignatureSize = 128
)

// minhashSeeds are the per-function mixing seeds, derived once from a
// fixed splitmix64 stream so signatures are stable across runs.
var minhashSeeds = func() [SignatureSize]uint64 {
	var seeds [SignatureSize]uint64
	state := uint64(0x9e3779b97f4a7c15)
	for i := range seeds {
		state = splitmix64(&state)
		seeds[i] = state
	}
	return seeds
}()

func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Signature computes the MinHash signature of a text. Each signature
// position holds the minimum of one hash function over all word
// shingles.
func Signature(text string) []uint64 {
	shingles := shingleHashes(text)

	signature := make([]uint64, SignatureSize)
	for i := range signature {
		minimum := ^uint64(0)
		for _, shingle := range shingles {
			mixed := shingle ^ minhashSeeds[i]
			mixed = (mixed ^ (mixed >> 33)) * 0xff51afd7ed558ccd
			mixed ^= mixed >> 33
			if mixed < minimum {
				minimum = mixed
			}
		}
		signature[i] = minimum
	}
	return signature
}

// shingleHashes hashes every sliding ShingleSize-word window of the
// lowercased text. Texts shorter than one window hash as a single
// shingle.
func shingleHashes(text string) []uint64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return []uint64{hashShingle("")}
	}
	if len(words) < ShingleSize {
		return []uint64{hashShingle(strings.Join(words, " "))}
	}

	hashes := make([]uint64, 0, len(words)-ShingleSize+1)
	for i := 0; i+ShingleSize <= len(words); i++ {
		hashes = append(hashes, hashShingle(strings.Join(words[i:i+ShingleSize], " ")))
	}
	return hashes
}

func hashShingle(shingle string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(shingle))
	return h.Sum64()
}

// SignatureSimilarity estimates Jaccard similarity as the fraction of
// equal signature positions.
func SignatureSimilarity(a, b []uint64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	equal := 0
	for i := range a {
		if a[i] == b[i] {
			equal++
		}
	}
	return float64(equal) / float64(len(a))
}

// minhashIndex holds all indexed signatures keyed by record.
type minhashIndex struct {
	keys       []core.ID
	signatures [][]uint64
}

func (idx *minhashIndex) add(key core.ID, signature []uint64) {
	idx.keys = append(idx.keys, key)
	idx.signatures = append(idx.signatures, signature)
}

func (idx *minhashIndex) snapshot() *core.MinHashSnapshot {
	return &core.MinHashSnapshot{
		Keys:       append([]core.ID{}, idx.keys...),
		Signatures: append([][]uint64{}, idx.signatures...),
	}
}

func minhashFromSnapshot(snap *core.MinHashSnapshot) *minhashIndex {
	if snap == nil {
		return &minhashIndex{}
	}
	return &minhashIndex{keys: snap.Keys, signatures: snap.Signatures}
}
