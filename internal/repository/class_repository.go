package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/okulpanel/rehber-api/internal/models"
)

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// ListByYear returns the classes of one education year, name ascending.
func (r *ClassRepository) ListByYear(ctx context.Context, educationYearID int64) ([]models.Class, error) {
	const query = `SELECT id, name, education_year_id FROM classes WHERE education_year_id = $1 ORDER BY name`
	var classes []models.Class
	if err := r.db.SelectContext(ctx, &classes, query, educationYearID); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// Create inserts a new class and fills in the assigned id.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	const query = `INSERT INTO classes (name, education_year_id) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, class.Name, class.EducationYearID).Scan(&class.ID); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// BelongsToYear reports whether the class exists inside the given year.
func (r *ClassRepository) BelongsToYear(ctx context.Context, classID, educationYearID int64) (bool, error) {
	const query = `SELECT 1 FROM classes WHERE id = $1 AND education_year_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, classID, educationYearID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check class year: %w", err)
	}
	return true, nil
}
