package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/okulpanel/rehber-api/internal/models"
)

// TalentRepository manages free-text talent labels per student.
type TalentRepository struct {
	db *sqlx.DB
}

// NewTalentRepository constructs a TalentRepository.
func NewTalentRepository(db *sqlx.DB) *TalentRepository {
	return &TalentRepository{db: db}
}

// ListByStudent returns every talent label of a student.
func (r *TalentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Talent, error) {
	const query = `SELECT id, student_id, talent_name FROM talents WHERE student_id = $1 ORDER BY id`
	var talents []models.Talent
	if err := r.db.SelectContext(ctx, &talents, query, studentID); err != nil {
		return nil, fmt.Errorf("list talents: %w", err)
	}
	return talents, nil
}

// Create inserts a talent label and fills in the assigned id.
func (r *TalentRepository) Create(ctx context.Context, talent *models.Talent) error {
	const query = `INSERT INTO talents (student_id, talent_name) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, talent.StudentID, talent.TalentName).Scan(&talent.ID); err != nil {
		return fmt.Errorf("create talent: %w", err)
	}
	return nil
}
