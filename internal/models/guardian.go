package models

// Guardian is a caregiver other than the two parent slots. A student may have
// any number of these.
type Guardian struct {
	ID           int64  `db:"id" json:"id"`
	StudentID    int64  `db:"student_id" json:"student_id"`
	Name         string `db:"name" json:"name"`
	Phone        string `db:"phone" json:"phone"`
	Email        string `db:"email" json:"email"`
	Relationship string `db:"relationship" json:"relationship"`
}
