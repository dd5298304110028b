package favorites

import (
	"context"
	"testing"
)

func TestToggleAddsNewFavorite(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	favorited, err := svc.Toggle(ctx, "u1", "Paneer Butter Masala")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !favorited {
		t.Fatal("expected item to be favorited")
	}

	items, _ := svc.List(ctx, "u1")
	if len(items) != 1 || items[0] != "Paneer Butter Masala" {
		t.Fatalf("expected raw string stored verbatim, got %v", items)
	}
}

func TestToggleRemovesExactFavorite(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	svc.Toggle(ctx, "u1", "Dal Fry")
	favorited, err := svc.Toggle(ctx, "u1", "Dal Fry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if favorited {
		t.Fatal("expected second toggle to unfavorite")
	}

	items, _ := svc.List(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %v", items)
	}
}

func TestToggleRemovesSimilarVariant(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	svc.Toggle(ctx, "u1", "Chappathi")
	favorited, err := svc.Toggle(ctx, "u1", "Chapati")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if favorited {
		t.Fatal("expected variant toggle to remove the stored favorite")
	}

	items, _ := svc.List(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("expected variant removal, got %v", items)
	}
}

func TestAddSkipsEquivalentDuplicates(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	if err := svc.Add(ctx, "u1", "Butter Milk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Add(ctx, "u1", "Buttermilk"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := svc.List(ctx, "u1")
	if len(items) != 1 {
		t.Fatalf("expected one favorite per equivalence class, got %v", items)
	}
}

func TestRemoveDropsAllVariants(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	// Seed the store directly with two variants (bypassing Add's guard).
	repo.Add(ctx, "u1", "Dal Fry")
	repo.Add(ctx, "u1", "Dal Tadka")

	if err := svc.Remove(ctx, "u1", "Moong Dal"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := svc.List(ctx, "u1")
	if len(items) != 0 {
		t.Fatalf("expected all dal variants removed, got %v", items)
	}
}

func TestToggleRejectsEmptyItem(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	if _, err := svc.Toggle(context.Background(), "u1", "  **  "); err != ErrEmptyItem {
		t.Fatalf("expected ErrEmptyItem, got %v", err)
	}
}

func TestListIsPerUser(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	svc.Toggle(ctx, "u1", "Idli")
	svc.Toggle(ctx, "u2", "Dosa")

	items, _ := svc.List(ctx, "u1")
	if len(items) != 1 || items[0] != "Idli" {
		t.Fatalf("favorites leaked across users: %v", items)
	}
}
