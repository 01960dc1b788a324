package models

import "time"

// GuidancePlan is a counseling plan for a class within an education year.
type GuidancePlan struct {
	ID              int64     `db:"id" json:"id"`
	ClassID         int64     `db:"class_id" json:"class_id"`
	EducationYearID int64     `db:"education_year_id" json:"education_year_id"`
	Date            string    `db:"date" json:"date"`
	Topic           string    `db:"topic" json:"topic"`
	Description     string    `db:"description" json:"description"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// GuidancePlanFilter scopes plan listings.
type GuidancePlanFilter struct {
	ClassID         int64
	EducationYearID *int64
}

// GuidanceEvent is one activity under a guidance plan, with an optional
// uploaded attachment referenced by generated filename.
type GuidanceEvent struct {
	ID          int64     `db:"id" json:"id"`
	PlanID      int64     `db:"plan_id" json:"plan_id"`
	Date        string    `db:"date" json:"date"`
	EventName   string    `db:"event_name" json:"event_name"`
	Description string    `db:"description" json:"description"`
	FilePath    *string   `db:"file_path" json:"file_path,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
