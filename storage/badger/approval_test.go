package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

func newPendingItem(url, title string, quality float64, createdAt time.Time) *core.ApprovalItem {
	key := core.RecordKey(url, title)
	return &core.ApprovalItem{
		Key: key,
		Record: core.ContentRecord{
			Key:          key,
			Title:        title,
			URL:          url,
			Body:         "body text",
			SourceDomain: "example.org",
		},
		Quality:   core.QualityScore{Overall: quality},
		Verdict:   core.VerdictReview,
		Status:    core.StatusPending,
		CreatedAt: createdAt,
	}
}

func TestApprovalRepository_PutGet(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	item := newPendingItem("https://example.org/a", "Article A", 0.8, now)
	if err := stores.Approval.PutItem(ctx, item); err != nil {
		t.Fatalf("Failed to put item: %v", err)
	}

	got, err := stores.Approval.GetItem(ctx, item.Key)
	if err != nil {
		t.Fatalf("Failed to get item: %v", err)
	}
	if got.Record.Title != "Article A" {
		t.Fatalf("Expected 'Article A', got %q", got.Record.Title)
	}
	if got.Status != core.StatusPending {
		t.Fatalf("Expected pending status, got %v", got.Status)
	}
}

func TestApprovalRepository_GetMissing(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	_, err = stores.Approval.GetItem(context.Background(), core.ID(12345))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestApprovalRepository_StatusIndex(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)

	older := newPendingItem("https://example.org/a", "Article A", 0.8, base)
	newer := newPendingItem("https://example.org/b", "Article B", 0.6, base.Add(time.Minute))
	for _, item := range []*core.ApprovalItem{older, newer} {
		if err := stores.Approval.PutItem(ctx, item); err != nil {
			t.Fatalf("Failed to put item: %v", err)
		}
	}

	pending, err := stores.Approval.ListItems(ctx, core.StatusPending, 0)
	if err != nil {
		t.Fatalf("Failed to list pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("Expected 2 pending items, got %d", len(pending))
	}
	// Newest first
	if pending[0].Key != newer.Key {
		t.Fatal("Expected newest item first")
	}

	// Transition one item to approved; status index must follow.
	older.Status = core.StatusApproved
	older.ApprovedBy = "op"
	older.DecidedAt = time.Now().UTC()
	if err := stores.Approval.PutItem(ctx, older); err != nil {
		t.Fatalf("Failed to update item: %v", err)
	}

	pending, err = stores.Approval.ListItems(ctx, core.StatusPending, 0)
	if err != nil {
		t.Fatalf("Failed to list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].Key != newer.Key {
		t.Fatalf("Expected only the newer item pending, got %d items", len(pending))
	}

	approved, err := stores.Approval.ListItems(ctx, core.StatusApproved, 0)
	if err != nil {
		t.Fatalf("Failed to list approved: %v", err)
	}
	if len(approved) != 1 || approved[0].Key != older.Key {
		t.Fatalf("Expected only the older item approved, got %d items", len(approved))
	}

	all, err := stores.Approval.ListItems(ctx, 0, 0)
	if err != nil {
		t.Fatalf("Failed to list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 items in total, got %d", len(all))
	}
}

func TestApprovalRepository_ListLimit(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)

	for i := 0; i < 5; i++ {
		item := newPendingItem("https://example.org/a", string(rune('a'+i)), 0.5, base.Add(time.Duration(i)*time.Minute))
		if err := stores.Approval.PutItem(ctx, item); err != nil {
			t.Fatalf("Failed to put item: %v", err)
		}
	}

	items, err := stores.Approval.ListItems(ctx, core.StatusPending, 3)
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
}
