package model

import (
	"slices"
	"strings"
	"time"
)

// Category classifies an achievement. The set is fixed — the create/update
// forms only offer these values, and search filters on exact match.
type Category string

const (
	CategoryHackathon     Category = "Hackathon"
	CategoryCompetition   Category = "Competition"
	CategoryResearch      Category = "Research"
	CategoryProject       Category = "Project"
	CategoryInternship    Category = "Internship"
	CategoryAward         Category = "Award"
	CategoryCertification Category = "Certification"
	CategoryOther         Category = "Other"
)

// AllCategories is the search filter sentinel meaning "no category filter".
// It is not a valid Category for an achievement itself.
const AllCategories = "All Categories"

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryHackathon,
		CategoryCompetition,
		CategoryResearch,
		CategoryProject,
		CategoryInternship,
		CategoryAward,
		CategoryCertification,
		CategoryOther,
	}
}

// Achievement is one posted accomplishment.
//
// UserID is the owning user and never changes; only the owner may mutate or
// delete the record. Likes holds user ids with no duplicates — like/unlike
// maintain that invariant. Date is the user-supplied event date; CreatedAt
// is store-assigned at creation and immutable.
type Achievement struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      Category  `json:"category"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Links         []string  `json:"links,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Collaborators []string  `json:"collaborators,omitempty"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
	Likes         []string  `json:"likes"`
}

// LikedBy reports whether the given user id is in the like set.
func (a *Achievement) LikedBy(userID string) bool {
	return slices.Contains(a.Likes, userID)
}

// Clone returns a deep copy so callers can hold a snapshot without
// aliasing the store's slices.
func (a Achievement) Clone() Achievement {
	a.Links = slices.Clone(a.Links)
	a.Tags = slices.Clone(a.Tags)
	a.Collaborators = slices.Clone(a.Collaborators)
	a.Likes = slices.Clone(a.Likes)
	return a
}

// The oneof lists in the validate tags below must stay in sync with the
// Category constants.

// AchievementDraft is the input for creating an achievement. The store
// fills in ID, CreatedAt, Likes, and the owning UserID.
type AchievementDraft struct {
	Title         string    `json:"title" validate:"required,max=200"`
	Description   string    `json:"description" validate:"required,max=5000"`
	Category      Category  `json:"category" validate:"required,oneof=Hackathon Competition Research Project Internship Award Certification Other"`
	ImageURL      string    `json:"imageUrl" validate:"omitempty,url"`
	Links         []string  `json:"links" validate:"omitempty,dive,url"`
	Tags          []string  `json:"tags" validate:"omitempty,dive,max=40"`
	Collaborators []string  `json:"collaborators" validate:"omitempty,dive,max=100"`
	Date          time.Time `json:"date" validate:"required"`
}

// AchievementPatch is a partial update applied by the owner. Nil means
// "leave unchanged" — including for the slice fields, where a pointer to an
// empty slice clears the list and nil keeps it.
type AchievementPatch struct {
	Title         *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category      *Category  `json:"category,omitempty" validate:"omitempty,oneof=Hackathon Competition Research Project Internship Award Certification Other"`
	ImageURL      *string    `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Links         *[]string  `json:"links,omitempty" validate:"omitempty,dive,url"`
	Tags          *[]string  `json:"tags,omitempty" validate:"omitempty,dive,max=40"`
	Collaborators *[]string  `json:"collaborators,omitempty" validate:"omitempty,dive,max=100"`
	Date          *time.Time `json:"date,omitempty"`
}

// Apply merges the patch into a. Unset fields are retained.
func (p AchievementPatch) Apply(a *Achievement) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.Links != nil {
		a.Links = slices.Clone(*p.Links)
	}
	if p.Tags != nil {
		a.Tags = slices.Clone(*p.Tags)
	}
	if p.Collaborators != nil {
		a.Collaborators = slices.Clone(*p.Collaborators)
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
}

// The achievement form collects tags and collaborators as comma-separated
// text and links as one-per-line text. These helpers split, trim, and drop
// empties the same way the form does.

// ParseTags splits comma-separated tag text into a clean tag list.
func ParseTags(s string) []string {
	return splitAndTrim(s, ",")
}

// ParseCollaborators splits comma-separated names into a clean list.
func ParseCollaborators(s string) []string {
	return splitAndTrim(s, ",")
}

// ParseLinks splits newline-separated URL text into a clean list.
func ParseLinks(s string) []string {
	return splitAndTrim(s, "\n")
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
