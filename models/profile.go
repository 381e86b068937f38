package models

import "time"

// Skill is a single named skill owned by a user.
type Skill struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name" validate:"required"`
	Level  string `json:"level"`
}

// CareerPath is a career direction the user wants to pursue.
type CareerPath struct {
	ID      string `json:"id,omitempty"`
	UserID  string `json:"userId,omitempty"`
	Title   string `json:"title" validate:"required"`
	Summary string `json:"summary"`
}

// Resume holds the free-text resume sections of a user. At most one resume
// exists per user.
type Resume struct {
	ID         string    `json:"id,omitempty"`
	UserID     string    `json:"userId,omitempty"`
	Summary    string    `json:"summary"`
	Education  string    `json:"education"`
	Experience string    `json:"experience"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

// IsComplete reports whether every section needed to build a resume
// document is filled in.
func (r *Resume) IsComplete() bool {
	return r != nil && r.Summary != "" && r.Education != "" && r.Experience != ""
}

// Profile is a user together with all of the associations owned by it.
type Profile struct {
	User
	Skills      []Skill      `json:"skills"`
	CareerPaths []CareerPath `json:"careerPaths"`
	Resume      *Resume      `json:"resume"`
}

// ProfileUpdate replaces the editable parts of a profile in one step.
//
// Skills and CareerPaths replace the stored sets entirely; an empty slice
// clears them. A nil Interests leaves the stored interests untouched, an
// empty slice clears them. A nil Resume leaves the stored resume untouched.
type ProfileUpdate struct {
	UserID      string       `json:"userId" validate:"required"`
	Interests   []string     `json:"interests"`
	Skills      []Skill      `json:"skills" validate:"dive"`
	CareerPaths []CareerPath `json:"careerPaths" validate:"dive"`
	Resume      *Resume      `json:"resume"`
}

// ProfileUpdateResponse is returned after a successful profile update.
type ProfileUpdateResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}
