package models

// Class represents a classroom within one education year.
type Class struct {
	ID              int64  `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	EducationYearID int64  `db:"education_year_id" json:"education_year_id"`
}
