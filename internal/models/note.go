package models

import "time"

// NoteKind selects between the two append-only note streams per student.
type NoteKind string

const (
	NoteKindDevelopment NoteKind = "development"
	NoteKindEvaluation  NoteKind = "evaluation"
)

// Note is an append-only timestamped free-text entry for a student,
// listed newest first.
type Note struct {
	ID        int64     `db:"id" json:"id"`
	StudentID int64     `db:"student_id" json:"student_id"`
	Note      string    `db:"note" json:"note"`
	Date      time.Time `db:"date" json:"date"`
}
