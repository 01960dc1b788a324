package models

// Talent is a free-text label attached to a student.
type Talent struct {
	ID         int64  `db:"id" json:"id"`
	StudentID  int64  `db:"student_id" json:"student_id"`
	TalentName string `db:"talent_name" json:"talent_name"`
}
