package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/okulpanel/rehber-api/internal/models"
)

// ErrDuplicateYear signals that the unique year label already exists.
var ErrDuplicateYear = fmt.Errorf("education year already exists")

// EducationYearRepository manages persistence for education years.
type EducationYearRepository struct {
	db *sqlx.DB
}

// NewEducationYearRepository constructs an EducationYearRepository.
func NewEducationYearRepository(db *sqlx.DB) *EducationYearRepository {
	return &EducationYearRepository{db: db}
}

// List returns all education years, newest label first.
func (r *EducationYearRepository) List(ctx context.Context) ([]models.EducationYear, error) {
	const query = `SELECT id, year, is_active FROM education_years ORDER BY year DESC`
	var years []models.EducationYear
	if err := r.db.SelectContext(ctx, &years, query); err != nil {
		return nil, fmt.Errorf("list education years: %w", err)
	}
	return years, nil
}

// Create inserts a new education year and fills in the assigned id.
func (r *EducationYearRepository) Create(ctx context.Context, year *models.EducationYear) error {
	const query = `INSERT INTO education_years (year) VALUES ($1) RETURNING id, is_active`
	if err := r.db.QueryRowxContext(ctx, query, year.Year).Scan(&year.ID, &year.IsActive); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return ErrDuplicateYear
		}
		return fmt.Errorf("create education year: %w", err)
	}
	return nil
}
