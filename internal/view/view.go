// Package view derives read-only projections over store snapshots for the
// feed, profile, and search screens. Nothing in this package mutates store
// state — every function takes a snapshot slice and returns a new slice.
package view

import (
	"sort"
	"strings"

	"github.com/sakif/achievement-society/internal/model"
)

// FeedPageSize is the display increment: the feed starts at one page and
// "load more" grows the display count by this much.
const FeedPageSize = 5

// FeedOptions selects and truncates the feed projection.
type FeedOptions struct {
	// UserID, when non-empty, restricts the feed to one user's
	// achievements (the profile view).
	UserID string
	// Count is the display count. Zero or negative means one page.
	Count int
}

// NextCount grows a display count by one page for "load more".
func NextCount(current int) int {
	return current + FeedPageSize
}

// Feed returns achievements sorted descending by creation time, optionally
// filtered to one user, truncated to the display count.
func Feed(records []model.Achievement, opts FeedOptions) []model.Achievement {
	var out []model.Achievement
	for _, a := range records {
		if opts.UserID != "" && a.UserID != opts.UserID {
			continue
		}
		out = append(out, a)
	}
	sortNewestFirst(out)

	count := opts.Count
	if count <= 0 {
		count = FeedPageSize
	}
	if count < len(out) {
		out = out[:count]
	}
	return out
}

// SearchQuery filters the search projection. Term and Category compose
// with AND; an empty Term or the AllCategories sentinel disables the
// respective filter. A tag name arriving via the search URL's tag
// parameter is passed as Term.
type SearchQuery struct {
	Term     string
	Category string
}

// Search returns the achievements matching the query, sorted descending by
// creation time. The term matches case-insensitively as a substring of the
// title, the description, or any tag.
func Search(records []model.Achievement, q SearchQuery) []model.Achievement {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	filterCategory := q.Category != "" && q.Category != model.AllCategories

	var out []model.Achievement
	for _, a := range records {
		if term != "" && !matchesTerm(a, term) {
			continue
		}
		if filterCategory && string(a.Category) != q.Category {
			continue
		}
		out = append(out, a)
	}
	sortNewestFirst(out)
	return out
}

func matchesTerm(a model.Achievement, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// sortNewestFirst sorts descending by CreatedAt. The sort is stable so
// records with equal timestamps keep their insertion order.
func sortNewestFirst(records []model.Achievement) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

// CommentCounts returns the number of comments per achievement id.
func CommentCounts(comments []model.Comment) map[string]int {
	counts := make(map[string]int)
	for _, c := range comments {
		counts[c.AchievementID]++
	}
	return counts
}

// CommentCount returns the number of comments on one achievement.
func CommentCount(comments []model.Comment, achievementID string) int {
	n := 0
	for _, c := range comments {
		if c.AchievementID == achievementID {
			n++
		}
	}
	return n
}
