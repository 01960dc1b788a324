package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/okulpanel/rehber-api/internal/models"
)

// GuidancePlanRepository manages counseling plans.
type GuidancePlanRepository struct {
	db *sqlx.DB
}

// NewGuidancePlanRepository constructs a GuidancePlanRepository.
func NewGuidancePlanRepository(db *sqlx.DB) *GuidancePlanRepository {
	return &GuidancePlanRepository{db: db}
}

// List returns plans for a class, optionally narrowed to one year, date ascending.
func (r *GuidancePlanRepository) List(ctx context.Context, filter models.GuidancePlanFilter) ([]models.GuidancePlan, error) {
	builder := strings.Builder{}
	builder.WriteString(`SELECT id, class_id, education_year_id, date, topic, description, created_at
        FROM guidance_plans WHERE class_id = $1`)
	args := []interface{}{filter.ClassID}

	if filter.EducationYearID != nil {
		args = append(args, *filter.EducationYearID)
		builder.WriteString(fmt.Sprintf(" AND education_year_id = $%d", len(args)))
	}
	builder.WriteString(" ORDER BY date ASC")

	var plans []models.GuidancePlan
	if err := r.db.SelectContext(ctx, &plans, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list guidance plans: %w", err)
	}
	return plans, nil
}

// Create inserts a plan and fills in the assigned id and timestamp.
func (r *GuidancePlanRepository) Create(ctx context.Context, plan *models.GuidancePlan) error {
	const query = `INSERT INTO guidance_plans (class_id, education_year_id, date, topic, description)
        VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query,
		plan.ClassID, plan.EducationYearID, plan.Date, plan.Topic, plan.Description,
	).Scan(&plan.ID, &plan.CreatedAt); err != nil {
		return fmt.Errorf("create guidance plan: %w", err)
	}
	return nil
}

// Update replaces date, topic and description and reports rows matched.
func (r *GuidancePlanRepository) Update(ctx context.Context, plan *models.GuidancePlan) (int64, error) {
	const query = `UPDATE guidance_plans SET date = $2, topic = $3, description = $4 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, plan.ID, plan.Date, plan.Topic, plan.Description)
	if err != nil {
		return 0, fmt.Errorf("update guidance plan: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update guidance plan: %w", err)
	}
	return affected, nil
}

// Delete removes a plan together with its events in one transaction and
// returns the attachment filenames of the deleted events so the caller can
// clean up the upload directory. Zero deleted plans means the id was unknown.
func (r *GuidancePlanRepository) Delete(ctx context.Context, id int64) (deleted int64, orphanedFiles []string, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("begin plan delete: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = tx.SelectContext(ctx, &orphanedFiles,
		`SELECT file_path FROM guidance_events WHERE plan_id = $1 AND file_path IS NOT NULL`, id); err != nil {
		return 0, nil, fmt.Errorf("collect event attachments: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM guidance_events WHERE plan_id = $1`, id); err != nil {
		return 0, nil, fmt.Errorf("delete plan events: %w", err)
	}

	result, execErr := tx.ExecContext(ctx, `DELETE FROM guidance_plans WHERE id = $1`, id)
	if execErr != nil {
		err = fmt.Errorf("delete guidance plan: %w", execErr)
		return 0, nil, err
	}
	deleted, err = result.RowsAffected()
	if err != nil {
		return 0, nil, fmt.Errorf("delete guidance plan: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("commit plan delete: %w", err)
	}
	return deleted, orphanedFiles, nil
}
