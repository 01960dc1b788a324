package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/okulpanel/rehber-api/internal/models"
)

// GuardianRepository manages non-parent caregiver records.
type GuardianRepository struct {
	db *sqlx.DB
}

// NewGuardianRepository constructs a GuardianRepository.
func NewGuardianRepository(db *sqlx.DB) *GuardianRepository {
	return &GuardianRepository{db: db}
}

// ListByStudent returns every guardian attached to a student.
func (r *GuardianRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Guardian, error) {
	const query = `SELECT id, student_id, name, phone, email, relationship
        FROM guardian_info WHERE student_id = $1 ORDER BY id`
	var guardians []models.Guardian
	if err := r.db.SelectContext(ctx, &guardians, query, studentID); err != nil {
		return nil, fmt.Errorf("list guardians: %w", err)
	}
	return guardians, nil
}

// Create inserts a guardian and fills in the assigned id.
func (r *GuardianRepository) Create(ctx context.Context, guardian *models.Guardian) error {
	const query = `INSERT INTO guardian_info (student_id, name, phone, email, relationship)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		guardian.StudentID, guardian.Name, guardian.Phone, guardian.Email, guardian.Relationship,
	).Scan(&guardian.ID); err != nil {
		return fmt.Errorf("create guardian: %w", err)
	}
	return nil
}

// Update overwrites a guardian row and reports how many rows matched.
func (r *GuardianRepository) Update(ctx context.Context, guardian *models.Guardian) (int64, error) {
	const query = `UPDATE guardian_info SET name = $2, phone = $3, email = $4, relationship = $5
        WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		guardian.ID, guardian.Name, guardian.Phone, guardian.Email, guardian.Relationship)
	if err != nil {
		return 0, fmt.Errorf("update guardian: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update guardian: %w", err)
	}
	return affected, nil
}

// Delete removes a guardian row and reports how many rows went.
func (r *GuardianRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM guardian_info WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete guardian: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete guardian: %w", err)
	}
	return affected, nil
}
