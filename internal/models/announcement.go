package models

import "time"

// Announcement belongs to one class and education-year pair. Sharing is a
// one-way state transition recorded with its date.
type Announcement struct {
	ID              int64     `db:"id" json:"id"`
	ClassID         int64     `db:"class_id" json:"class_id"`
	EducationYearID int64     `db:"education_year_id" json:"education_year_id"`
	Title           string    `db:"title" json:"title"`
	EventDate       *string   `db:"event_date" json:"event_date,omitempty"`
	IsShared        bool      `db:"is_shared" json:"is_shared"`
	SharedDate      *string   `db:"shared_date" json:"shared_date,omitempty"`
	Notes           string    `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// AnnouncementFilter scopes announcement listings.
type AnnouncementFilter struct {
	ClassID         int64
	EducationYearID *int64
}
