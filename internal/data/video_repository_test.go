//go:build integration

package data

import (
	"context"
	"testing"
)

func TestVideoRepository_Latest(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewVideoRepository(db)
	ctx := context.Background()

	titles := []string{"First", "Second", "Third", "Fourth", "Fifth"}
	for _, title := range titles {
		if _, err := repo.Create(ctx, &Video{Title: title, URL: "https://youtu.be/x"}); err != nil {
			t.Fatalf("failed to seed video: %v", err)
		}
	}

	latest, err := repo.Latest(ctx, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(latest) != 4 {
		t.Fatalf("expected 4 videos, got %d", len(latest))
	}
	// Newest first.
	want := []string{"Fifth", "Fourth", "Third", "Second"}
	for i, v := range latest {
		if v.Title != want[i] {
			t.Errorf("latest[%d].Title = %q, want %q", i, v.Title, want[i])
		}
	}
}

func TestVideoRepository_LatestFewerThanRequested(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewVideoRepository(db)
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Video{Title: "Only one", URL: "https://youtu.be/x"}); err != nil {
		t.Fatal(err)
	}

	latest, err := repo.Latest(ctx, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(latest) != 1 {
		t.Errorf("expected 1 video, got %d", len(latest))
	}
}

func TestVideoRepository_ListSearch(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewVideoRepository(db)
	ctx := context.Background()

	for _, title := range []string{"Grammar lesson 1", "Grammar lesson 2", "Vocabulary drill"} {
		if _, err := repo.Create(ctx, &Video{Title: title, URL: "https://youtu.be/x"}); err != nil {
			t.Fatal(err)
		}
	}

	videos, p, err := repo.List(ctx, ListParams{Page: 1, PerPage: 9, Search: "grammar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) != 2 || p.Total != 2 {
		t.Errorf("expected 2 grammar videos, got %d (total %d)", len(videos), p.Total)
	}

	videos, p, err = repo.List(ctx, ListParams{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) != 2 || p.Total != 3 || !p.HasNext {
		t.Errorf("unexpected first page: %d videos, pagination %+v", len(videos), p)
	}
}

func TestVideoRepository_UpdateDelete(t *testing.T) {
	db, teardown := setupTestDB(t)
	defer teardown()
	repo := NewVideoRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &Video{Title: "Draft", URL: "https://youtu.be/a"})
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Update(ctx, &Video{ID: id, Title: "Final", URL: "https://youtu.be/b"}); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	v, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if v.Title != "Final" || v.URL != "https://youtu.be/b" {
		t.Errorf("update not applied: %+v", v)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if err := repo.Delete(ctx, id); err == nil {
		t.Error("expected an error deleting a missing video")
	}
}
