package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/okulpanel/rehber-api/internal/models"
)

// NoteRepository manages one of the two append-only note streams. The table is
// fixed at construction so development and evaluation notes share the code
// without sharing rows.
type NoteRepository struct {
	db    *sqlx.DB
	table string
}

// NewDevelopmentNoteRepository constructs the development-note repository.
func NewDevelopmentNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db, table: "development_notes"}
}

// NewEvaluationNoteRepository constructs the evaluation-note repository.
func NewEvaluationNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db, table: "evaluation_notes"}
}

// ListByStudent returns a student's notes, newest first.
func (r *NoteRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Note, error) {
	query := fmt.Sprintf(`SELECT id, student_id, note, date FROM %s
        WHERE student_id = $1 ORDER BY date DESC`, r.table)
	var notes []models.Note
	if err := r.db.SelectContext(ctx, &notes, query, studentID); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return notes, nil
}

// Create appends a note, stamping it with the current time.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	if note.Date.IsZero() {
		note.Date = time.Now().UTC()
	}
	query := fmt.Sprintf(`INSERT INTO %s (student_id, note, date) VALUES ($1, $2, $3) RETURNING id`, r.table)
	if err := r.db.QueryRowxContext(ctx, query, note.StudentID, note.Note, note.Date).Scan(&note.ID); err != nil {
		return fmt.Errorf("create %s: %w", r.table, err)
	}
	return nil
}
