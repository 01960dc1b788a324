package models

// EducationYear is the root of time-partitioning: every class, student,
// announcement and guidance plan belongs to exactly one year.
type EducationYear struct {
	ID       int64  `db:"id" json:"id"`
	Year     string `db:"year" json:"year"`
	IsActive bool   `db:"is_active" json:"is_active"`
}
