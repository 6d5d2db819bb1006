package store

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/achievement-society/internal/apperror"
)

func TestCommentsLoad_SeedsWhenStorageEmpty(t *testing.T) {
	_, _, comments, _ := newSeededStores(t)

	list := comments.List()
	if len(list) != 2 {
		t.Fatalf("List() = %d comments, want the 2 seeded", len(list))
	}
	if list[0].ID != "c1" || list[1].ID != "c2" {
		t.Errorf("unexpected seed order: %s, %s", list[0].ID, list[1].ID)
	}
}

func TestAdd_RequiresAuthentication(t *testing.T) {
	_, _, comments, _ := newSeededStores(t)

	_, err := comments.Add(context.Background(), "a1", "nice!", nil)
	if !errors.Is(err, apperror.ErrNotAuthenticated) {
		t.Errorf("error = %v, want ErrNotAuthenticated", err)
	}
}

func TestAdd_RejectsEmptyText(t *testing.T) {
	identity, _, comments, _ := newSeededStores(t)
	jane := signedInJane(t, identity)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := comments.Add(ctx, "a1", text, jane)
		if !errors.Is(err, apperror.ErrValidation) {
			t.Errorf("Add(%q) error = %v, want ErrValidation", text, err)
		}
	}
	if n := len(comments.ByAchievement("a1")); n != 1 {
		t.Errorf("comments on a1 = %d, want unchanged 1", n)
	}
}

func TestAdd_PrependsAndTrims(t *testing.T) {
	identity, _, comments, _ := newSeededStores(t)
	jane := signedInJane(t, identity)

	added, err := comments.Add(context.Background(), "a3", "  So proud of this team!  ", jane)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added.Text != "So proud of this team!" {
		t.Errorf("Text = %q, want trimmed", added.Text)
	}
	if added.ID == "" || added.CreatedAt.IsZero() {
		t.Error("expected a generated id and timestamp")
	}
	if added.UserID != jane.ID || added.AchievementID != "a3" {
		t.Errorf("foreign keys = %s/%s, want %s/a3", added.UserID, added.AchievementID, jane.ID)
	}

	list := comments.List()
	if list[0].ID != added.ID {
		t.Errorf("List()[0] = %s, want the new comment first", list[0].ID)
	}
}

func TestDeleteComment_NotFound(t *testing.T) {
	identity, _, comments, _ := newSeededStores(t)
	jane := signedInJane(t, identity)

	err := comments.Delete(context.Background(), "missing", jane)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	identity, _, comments, _ := newSeededStores(t)
	john := signedInJohn(t, identity)
	ctx := context.Background()

	// c1 was written by jane (user 2); john may not delete it.
	if err := comments.Delete(ctx, "c1", john); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("error = %v, want ErrForbidden", err)
	}
	if n := len(comments.ByAchievement("a1")); n != 1 {
		t.Errorf("comments on a1 = %d, want unchanged 1", n)
	}

	// c2 is john's own.
	if err := comments.Delete(ctx, "c2", john); err != nil {
		t.Fatalf("Delete(c2) error = %v", err)
	}
	if n := len(comments.ByAchievement("a2")); n != 0 {
		t.Errorf("comments on a2 = %d, want 0", n)
	}
}

func TestDeleteByAchievement_SinglePass(t *testing.T) {
	identity, _, comments, kv := newSeededStores(t)
	jane := signedInJane(t, identity)
	ctx := context.Background()

	// Pile up several comments on a1 so the cascade removes more than one.
	for _, text := range []string{"first", "second", "third"} {
		if _, err := comments.Add(ctx, "a1", text, jane); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	if err := comments.DeleteByAchievement(ctx, "a1"); err != nil {
		t.Fatalf("DeleteByAchievement() error = %v", err)
	}
	if n := len(comments.ByAchievement("a1")); n != 0 {
		t.Errorf("comments on a1 = %d, want 0", n)
	}
	if n := len(comments.ByAchievement("a2")); n != 1 {
		t.Errorf("comments on a2 = %d, want untouched 1", n)
	}

	// A cascade with no matches must not rewrite storage.
	before := string(kv.data["comments"])
	if err := comments.DeleteByAchievement(ctx, "a1"); err != nil {
		t.Fatalf("second DeleteByAchievement() error = %v", err)
	}
	if string(kv.data["comments"]) != before {
		t.Error("an empty cascade must leave the persisted value alone")
	}
}

func TestByAchievement_FiltersByForeignKey(t *testing.T) {
	_, _, comments, _ := newSeededStores(t)

	on1 := comments.ByAchievement("a1")
	if len(on1) != 1 || on1[0].ID != "c1" {
		t.Errorf("ByAchievement(a1) = %v, want [c1]", on1)
	}
	if got := comments.ByAchievement("nope"); len(got) != 0 {
		t.Errorf("ByAchievement(nope) = %v, want empty", got)
	}
}
