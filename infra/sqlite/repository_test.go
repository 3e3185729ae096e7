package sqlite

import (
	"catalog/domain"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func newTestRepository(t *testing.T) *SqliteRepository {
	t.Helper()

	repository := NewSqliteRepository(filepath.Join(t.TempDir(), "items.db"))
	t.Cleanup(func() { repository.Close() })
	return repository
}

func strptr(s string) *string { return &s }

func TestCreateAndGetItem(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := domain.NewItem("foo", strptr("bar"))
	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != item.ID || got.Name != "foo" || got.Description == nil || *got.Description != "bar" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestGetItemMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetItem(context.Background(), "nope")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestNullDescriptionRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := domain.NewItem("foo", nil)
	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Description != nil {
		t.Errorf("expected NULL description, got %q", *got.Description)
	}
}

func TestUpdateItem(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := domain.NewItem("foo", strptr("bar"))
	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	item.Name = "baz"
	item.Description = nil
	if err := repo.UpdateItem(ctx, item); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := repo.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "baz" || got.Description != nil {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestDeleteItem(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := domain.NewItem("foo", nil)
	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.GetItem(ctx, item.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}
}

func TestGetItemsEmptyAndOrdered(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	items, err := repo.GetItems(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty store, got %d items", len(items))
	}

	first := domain.NewItem("first", nil)
	second := domain.NewItem("second", nil)
	for _, item := range []domain.Item{first, second} {
		if err := repo.CreateItem(ctx, item); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	items, err = repo.GetItems(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}
