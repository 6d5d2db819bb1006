package view

import (
	"testing"
	"time"

	"github.com/sakif/achievement-society/internal/model"
)

func at(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func TestFeed_SortsNewestFirst(t *testing.T) {
	records := []model.Achievement{
		{ID: "older", CreatedAt: at(1)},
		{ID: "newer", CreatedAt: at(2)},
	}

	got := Feed(records, FeedOptions{Count: 10})
	if len(got) != 2 || got[0].ID != "newer" || got[1].ID != "older" {
		t.Errorf("Feed() order = %v, want [newer older]", ids(got))
	}
}

func TestFeed_StableForEqualTimestamps(t *testing.T) {
	records := []model.Achievement{
		{ID: "first", CreatedAt: at(1)},
		{ID: "second", CreatedAt: at(1)},
	}

	got := Feed(records, FeedOptions{Count: 10})
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("Feed() order = %v, want insertion order kept for ties", ids(got))
	}
}

func TestFeed_FiltersByUser(t *testing.T) {
	records := []model.Achievement{
		{ID: "a", UserID: "1", CreatedAt: at(1)},
		{ID: "b", UserID: "2", CreatedAt: at(2)},
		{ID: "c", UserID: "1", CreatedAt: at(3)},
	}

	got := Feed(records, FeedOptions{UserID: "1", Count: 10})
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "a" {
		t.Errorf("Feed(user 1) = %v, want [c a]", ids(got))
	}
}

func TestFeed_TruncatesAndLoadsMore(t *testing.T) {
	var records []model.Achievement
	for day := 1; day <= 12; day++ {
		records = append(records, model.Achievement{ID: string(rune('a' + day - 1)), CreatedAt: at(day)})
	}

	// Zero count means one page.
	page := Feed(records, FeedOptions{})
	if len(page) != FeedPageSize {
		t.Fatalf("Feed() = %d records, want %d", len(page), FeedPageSize)
	}

	// "Load more" grows the display count by a page at a time.
	more := Feed(records, FeedOptions{Count: NextCount(FeedPageSize)})
	if len(more) != 10 {
		t.Errorf("Feed(load more) = %d records, want 10", len(more))
	}
	if more[0].ID != page[0].ID {
		t.Error("growing the count must keep the head of the feed stable")
	}

	all := Feed(records, FeedOptions{Count: NextCount(10)})
	if len(all) != 12 {
		t.Errorf("Feed(count 15) = %d records, want all 12", len(all))
	}
}

func TestSearch_TermIsCaseInsensitiveAcrossFields(t *testing.T) {
	records := []model.Achievement{
		{ID: "p1", Title: "AI project", Tags: []string{"AI"}, CreatedAt: at(1)},
		{ID: "p2", Title: "Bake sale", Tags: []string{"Fundraising"}, CreatedAt: at(2)},
	}

	for _, term := range []string{"ai", "AI", "Ai"} {
		got := Search(records, SearchQuery{Term: term})
		if len(got) != 1 || got[0].ID != "p1" {
			t.Errorf("Search(%q) = %v, want [p1]", term, ids(got))
		}
	}

	// Description matches count too.
	records[1].Description = "we raised money for the AI lab"
	got := Search(records, SearchQuery{Term: "ai"})
	if len(got) != 2 {
		t.Errorf("Search() with description match = %v, want both", ids(got))
	}
}

func TestSearch_AllCategoriesDisablesFilter(t *testing.T) {
	records := []model.Achievement{
		{ID: "p1", Title: "AI project", Category: model.CategoryProject, CreatedAt: at(1)},
		{ID: "p2", Title: "Bake sale", Category: model.CategoryOther, CreatedAt: at(2)},
	}

	got := Search(records, SearchQuery{Category: model.AllCategories})
	if len(got) != 2 {
		t.Errorf("Search(All Categories) = %v, want both", ids(got))
	}
	got = Search(records, SearchQuery{})
	if len(got) != 2 {
		t.Errorf("Search(no filters) = %v, want both", ids(got))
	}
}

func TestSearch_CategoryAndTermCompose(t *testing.T) {
	records := []model.Achievement{
		{ID: "p1", Title: "AI project", Category: model.CategoryProject, CreatedAt: at(1)},
		{ID: "p2", Title: "AI research", Category: model.CategoryResearch, CreatedAt: at(2)},
		{ID: "p3", Title: "Bake sale", Category: model.CategoryProject, CreatedAt: at(3)},
	}

	got := Search(records, SearchQuery{Term: "ai", Category: "Project"})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("Search(ai AND Project) = %v, want [p1]", ids(got))
	}
}

func TestSearch_SortsNewestFirst(t *testing.T) {
	records := []model.Achievement{
		{ID: "old", Title: "robot arm", CreatedAt: at(1)},
		{ID: "new", Title: "robot leg", CreatedAt: at(5)},
	}

	got := Search(records, SearchQuery{Term: "robot"})
	if got[0].ID != "new" || got[1].ID != "old" {
		t.Errorf("Search() order = %v, want [new old]", ids(got))
	}
}

func TestCommentCounts(t *testing.T) {
	comments := []model.Comment{
		{ID: "c1", AchievementID: "a1"},
		{ID: "c2", AchievementID: "a2"},
		{ID: "c3", AchievementID: "a1"},
	}

	counts := CommentCounts(comments)
	if counts["a1"] != 2 || counts["a2"] != 1 {
		t.Errorf("CommentCounts() = %v", counts)
	}
	if CommentCount(comments, "a1") != 2 {
		t.Errorf("CommentCount(a1) = %d, want 2", CommentCount(comments, "a1"))
	}
	if CommentCount(comments, "a9") != 0 {
		t.Errorf("CommentCount(a9) = %d, want 0", CommentCount(comments, "a9"))
	}
}

func ids(records []model.Achievement) []string {
	out := make([]string, len(records))
	for i, a := range records {
		out[i] = a.ID
	}
	return out
}
