package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/okulpanel/rehber-api/internal/models"
)

// GuidanceEventRepository manages activities under guidance plans.
type GuidanceEventRepository struct {
	db *sqlx.DB
}

// NewGuidanceEventRepository constructs a GuidanceEventRepository.
func NewGuidanceEventRepository(db *sqlx.DB) *GuidanceEventRepository {
	return &GuidanceEventRepository{db: db}
}

// ListByPlan returns a plan's events, date ascending.
func (r *GuidanceEventRepository) ListByPlan(ctx context.Context, planID int64) ([]models.GuidanceEvent, error) {
	const query = `SELECT id, plan_id, date, event_name, description, file_path, created_at
        FROM guidance_events WHERE plan_id = $1 ORDER BY date ASC`
	var events []models.GuidanceEvent
	if err := r.db.SelectContext(ctx, &events, query, planID); err != nil {
		return nil, fmt.Errorf("list guidance events: %w", err)
	}
	return events, nil
}

// Create inserts an event and fills in the assigned id and timestamp.
func (r *GuidanceEventRepository) Create(ctx context.Context, event *models.GuidanceEvent) error {
	const query = `INSERT INTO guidance_events (plan_id, date, event_name, description, file_path)
        VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query,
		event.PlanID, event.Date, event.EventName, event.Description, event.FilePath,
	).Scan(&event.ID, &event.CreatedAt); err != nil {
		return fmt.Errorf("create guidance event: %w", err)
	}
	return nil
}

// Update replaces date, name and description. When newFile is non-nil the
// attachment reference is swapped too, and the previous filename is returned
// so the caller can remove the orphaned file.
func (r *GuidanceEventRepository) Update(ctx context.Context, event *models.GuidanceEvent, newFile *string) (int64, *string, error) {
	var previous *string
	if newFile != nil {
		if err := r.db.GetContext(ctx, &previous,
			`SELECT file_path FROM guidance_events WHERE id = $1`, event.ID); err != nil {
			if err == sql.ErrNoRows {
				return 0, nil, nil
			}
			return 0, nil, fmt.Errorf("load event attachment: %w", err)
		}
	}

	query := `UPDATE guidance_events SET date = $2, event_name = $3, description = $4 WHERE id = $1`
	args := []interface{}{event.ID, event.Date, event.EventName, event.Description}
	if newFile != nil {
		query = `UPDATE guidance_events SET date = $2, event_name = $3, description = $4, file_path = $5 WHERE id = $1`
		args = append(args, *newFile)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("update guidance event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, nil, fmt.Errorf("update guidance event: %w", err)
	}
	return affected, previous, nil
}

// Delete removes an event, reporting rows gone and the attachment filename.
func (r *GuidanceEventRepository) Delete(ctx context.Context, id int64) (int64, *string, error) {
	var filePath *string
	if err := r.db.GetContext(ctx, &filePath,
		`SELECT file_path FROM guidance_events WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil, nil
		}
		return 0, nil, fmt.Errorf("load event attachment: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM guidance_events WHERE id = $1`, id)
	if err != nil {
		return 0, nil, fmt.Errorf("delete guidance event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, nil, fmt.Errorf("delete guidance event: %w", err)
	}
	return affected, filePath, nil
}
