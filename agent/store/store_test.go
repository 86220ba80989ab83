package store

import (
	"context"
	"path/filepath"
	"testing"

	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

func openTestStore(t *testing.T, domain contractx.Domain) *Store {
	t.Helper()

	cfg := Config{Path: filepath.Join(t.TempDir(), domain.Table+".db")}
	s, err := Open(context.Background(), cfg, domain)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func str(s string) *string { return &s }

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	t.Parallel()

	s := openTestStore(t, contractx.ProductDomain())
	ctx := context.Background()

	var last int64
	for _, name := range []string{"iPhone", "Yoga Mat", "Ultra Laptop"} {
		id, err := s.Create(ctx, name, nil)
		if err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		if id <= last {
			t.Fatalf("id %d not greater than previous %d", id, last)
		}
		last = id
	}

	// Deleting must not free the id for reuse.
	if _, err := s.Delete(ctx, last); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	id, err := s.Create(ctx, "Super Phone", nil)
	if err != nil {
		t.Fatalf("Create after delete: %v", err)
	}
	if id <= last {
		t.Fatalf("id %d reused after delete of %d", id, last)
	}
}

func TestListOrderedWithOptionalColumn(t *testing.T) {
	t.Parallel()

	s := openTestStore(t, contractx.CustomerDomain())
	ctx := context.Background()

	if _, err := s.Create(ctx, "Rahul", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(ctx, "Priya", str("priya@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Name != "Rahul" || rows[1].Name != "Priya" {
		t.Fatalf("rows out of order: %v", rows)
	}
	if rows[0].Secondary != nil {
		t.Fatalf("rows[0].Secondary = %v, want nil", rows[0].Secondary)
	}
	if rows[1].Secondary == nil || *rows[1].Secondary != "priya@example.com" {
		t.Fatalf("rows[1].Secondary = %v, want priya@example.com", rows[1].Secondary)
	}
	if rows[0].CreatedAt == "" {
		t.Fatal("created_at not assigned by storage")
	}
}

func TestUpdateNoFieldsIsNoOp(t *testing.T) {
	t.Parallel()

	s := openTestStore(t, contractx.ProductDomain())
	ctx := context.Background()

	id, err := s.Create(ctx, "iPhone", str("2025 model"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	affected, err := s.Update(ctx, id, nil, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected = %d, want 0", affected)
	}

	rows, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if rows[0].Name != "iPhone" || *rows[0].Secondary != "2025 model" {
		t.Fatalf("row mutated by no-op update: %v", rows[0])
	}
}

func TestUpdatePartialFields(t *testing.T) {
	t.Parallel()

	s := openTestStore(t, contractx.ProductDomain())
	ctx := context.Background()

	id, err := s.Create(ctx, "Laptop", str("2024 model"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	affected, err := s.Update(ctx, id, str("Ultra Laptop"), nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	rows, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if rows[0].Name != "Ultra Laptop" {
		t.Fatalf("name = %s, want Ultra Laptop", rows[0].Name)
	}
	if rows[0].Secondary == nil || *rows[0].Secondary != "2024 model" {
		t.Fatalf("secondary changed unexpectedly: %v", rows[0].Secondary)
	}
}

func TestUpdateAndDeleteMissingID(t *testing.T) {
	t.Parallel()

	s := openTestStore(t, contractx.CustomerDomain())
	ctx := context.Background()

	affected, err := s.Update(ctx, 99, str("Nobody"), nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if affected != 0 {
		t.Fatalf("update affected = %d, want 0", affected)
	}

	affected, err = s.Delete(ctx, 99)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if affected != 0 {
		t.Fatalf("delete affected = %d, want 0", affected)
	}
}
