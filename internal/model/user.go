// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a member of the achievement society.
//
// Username doubles as a human-facing key (profile URLs use it), so it must
// be unique alongside Email within the identity store's backing set.
// CreatedAt is assigned once at sign-up and never changes.
//
// The json tags match the persisted layout exactly: the session record is
// stored under the "user" key as a field-tagged JSON document with dates as
// ISO-8601 strings. Optional fields use omitempty so absent stays absent.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	College        string    `json:"college,omitempty"`
	Course         string    `json:"course,omitempty"`
	GradYear       int       `json:"gradYear,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SignUpInput carries the fields a new member provides at sign-up.
// The validate tags are enforced by the identity store before any mutation.
type SignUpInput struct {
	Username       string `json:"username" validate:"required,min=3,max=30"`
	FullName       string `json:"fullName" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	ProfilePicture string `json:"profilePicture" validate:"omitempty,url"`
	Bio            string `json:"bio" validate:"max=500"`
	College        string `json:"college" validate:"max=100"`
	Course         string `json:"course" validate:"max=100"`
	GradYear       int    `json:"gradYear" validate:"omitempty,gte=1900,lte=2100"`
}

// UserPatch is a partial profile update. A nil field means "leave
// unchanged"; a pointer to the zero value means "set to empty". Keeping the
// two cases distinct is the whole point of the pointer fields — a plain
// struct could not tell an omitted Bio from a cleared one.
//
// ID, Username, Email, and CreatedAt are not patchable: the first and last
// are immutable, the middle two are uniqueness keys.
type UserPatch struct {
	FullName       *string `json:"fullName,omitempty" validate:"omitempty,max=100"`
	ProfilePicture *string `json:"profilePicture,omitempty" validate:"omitempty,url"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	College        *string `json:"college,omitempty" validate:"omitempty,max=100"`
	Course         *string `json:"course,omitempty" validate:"omitempty,max=100"`
	GradYear       *int    `json:"gradYear,omitempty" validate:"omitempty,gte=1900,lte=2100"`
}

// Apply merges the patch into u, field by field. Unset fields are retained.
func (p UserPatch) Apply(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.College != nil {
		u.College = *p.College
	}
	if p.Course != nil {
		u.Course = *p.Course
	}
	if p.GradYear != nil {
		u.GradYear = *p.GradYear
	}
}
