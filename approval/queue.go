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

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
	"github.com/poiesic/curator/storage"
)

// Queue is the durable approval workflow store. All mutations
// serialize through one lock and persist before returning, so the
// stored state never trails the decision an operator saw.
type Queue struct {
	policy *policy.Policy
	repo   storage.ApprovalRepository
	logger *slog.Logger

	// guards mutate-then-persist sections
	mu sync.Mutex
}

// Stats summarizes the queue for reporting.
type Stats struct {
	Pending  int
	Approved int
	Rejected int
	// AvgQuality averages the overall quality over every item.
	AvgQuality float64
	// RiskDistribution counts items per risk level name.
	RiskDistribution map[string]int
}

// NewQueue creates a queue over the given repository.
func NewQueue(p *policy.Policy, repo storage.ApprovalRepository, logger *slog.Logger) *Queue {
	return &Queue{
		policy: p,
		repo:   repo,
		logger: logger.With("component", "approval-queue"),
	}
}

// Add enqueues a record that cleared all gates, synthesizing its
// verdict and recommendation. The record's derived key blocks a second
// entry for the same URL and title while one is still pending, and a
// decided item is never overwritten.
func (q *Queue) Add(ctx context.Context, record *core.ContentRecord, quality core.QualityScore, license core.LicenseDecision, risk core.RiskAssessment, nov core.NoveltyResult) (*core.ApprovalItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	existing, err := q.repo.GetItem(ctx, record.Key)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Status == core.StatusPending {
			return existing, ErrDuplicatePending
		}
		// Terminal statuses are write-once; re-submission returns the
		// prior decision untouched.
		return existing, nil
	}

	verdict, recommendation := Recommend(q.policy, record, quality, license, risk, nov)
	item := &core.ApprovalItem{
		Key:            record.Key,
		Record:         *record,
		Quality:        quality,
		License:        license,
		Risk:           risk,
		Novelty:        nov,
		Verdict:        verdict,
		Recommendation: recommendation,
		Status:         core.StatusPending,
		CreatedAt:      now(),
	}

	if err := q.repo.PutItem(ctx, item); err != nil {
		return nil, fmt.Errorf("persisting approval item: %w", err)
	}

	q.logger.Info("record queued for approval",
		"key", item.Key, "verdict", verdict, "quality", quality.Overall)
	return item, nil
}

// Approve transitions a pending item to approved. Approving an item
// that is already decided is an idempotent no-op returning the item as
// it stands.
func (q *Queue) Approve(ctx context.Context, key core.ID, approver string) (*core.ApprovalItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, err := q.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if item.Status.Terminal() {
		q.logger.Debug("approve on decided item is a no-op", "key", key, "status", item.Status)
		return item, nil
	}

	item.Status = core.StatusApproved
	item.ApprovedBy = approver
	item.DecidedAt = now()

	if err := q.repo.PutItem(ctx, item); err != nil {
		return nil, fmt.Errorf("persisting approval: %w", err)
	}
	q.logger.Info("item approved", "key", key, "approver", approver)
	return item, nil
}

// Reject transitions a pending item to rejected with a reason.
// Rejecting a decided item is an idempotent no-op.
func (q *Queue) Reject(ctx context.Context, key core.ID, approver, reason string) (*core.ApprovalItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	item, err := q.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if item.Status.Terminal() {
		q.logger.Debug("reject on decided item is a no-op", "key", key, "status", item.Status)
		return item, nil
	}

	item.Status = core.StatusRejected
	item.ApprovedBy = approver
	item.RejectionReason = reason
	item.DecidedAt = now()

	if err := q.repo.PutItem(ctx, item); err != nil {
		return nil, fmt.Errorf("persisting rejection: %w", err)
	}
	q.logger.Info("item rejected", "key", key, "approver", approver, "reason", reason)
	return item, nil
}

// Get returns one item by key.
func (q *Queue) Get(ctx context.Context, key core.ID) (*core.ApprovalItem, error) {
	return q.get(ctx, key)
}

// List returns items by status, newest first. Status 0 lists all; a
// positive limit caps the result.
func (q *Queue) List(ctx context.Context, status core.ApprovalStatus, limit int) ([]*core.ApprovalItem, error) {
	return q.repo.ListItems(ctx, status, limit)
}

// TopRecommendations returns the pending items carrying an APPROVE
// verdict, sorted by quality then novelty descending, truncated to the
// policy's daily quota.
func (q *Queue) TopRecommendations(ctx context.Context) ([]*core.ApprovalItem, error) {
	pending, err := q.repo.ListItems(ctx, core.StatusPending, 0)
	if err != nil {
		return nil, err
	}

	recommended := make([]*core.ApprovalItem, 0, len(pending))
	for _, item := range pending {
		if item.Verdict == core.VerdictApprove {
			recommended = append(recommended, item)
		}
	}

	slices.SortFunc(recommended, func(a, b *core.ApprovalItem) int {
		switch {
		case a.Quality.Overall != b.Quality.Overall:
			if a.Quality.Overall > b.Quality.Overall {
				return -1
			}
			return 1
		case a.Novelty.Score != b.Novelty.Score:
			if a.Novelty.Score > b.Novelty.Score {
				return -1
			}
			return 1
		default:
			return 0
		}
	})

	if quota := q.policy.Approval.DailyQuota; len(recommended) > quota {
		recommended = recommended[:quota]
	}
	return recommended, nil
}

// Stats reports counts by status, the average quality and the risk
// level distribution over all items.
func (q *Queue) Stats(ctx context.Context) (*Stats, error) {
	items, err := q.repo.ListItems(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	stats := &Stats{RiskDistribution: make(map[string]int)}
	totalQuality := 0.0
	for _, item := range items {
		switch item.Status {
		case core.StatusPending:
			stats.Pending++
		case core.StatusApproved:
			stats.Approved++
		case core.StatusRejected:
			stats.Rejected++
		}
		totalQuality += item.Quality.Overall
		stats.RiskDistribution[item.Risk.Level.String()]++
	}
	if len(items) > 0 {
		stats.AvgQuality = totalQuality / float64(len(items))
	}
	return stats, nil
}

// now returns the current time at the storage layer's microsecond
// precision, so items compare equal after a persistence round trip.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (q *Queue) get(ctx context.Context, key core.ID) (*core.ApprovalItem, error) {
	item, err := q.repo.GetItem(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrItemNotFound, key)
		}
		return nil, err
	}
	return item, nil
}
