package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/okulpanel/rehber-api/internal/models"
)

// AnnouncementRepository manages class announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository constructs an AnnouncementRepository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// List returns announcements for a class, optionally narrowed to one year,
// newest first.
func (r *AnnouncementRepository) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	builder := strings.Builder{}
	builder.WriteString(`SELECT id, class_id, education_year_id, title, event_date, is_shared,
        shared_date, notes, created_at FROM announcements WHERE class_id = $1`)
	args := []interface{}{filter.ClassID}

	if filter.EducationYearID != nil {
		args = append(args, *filter.EducationYearID)
		builder.WriteString(fmt.Sprintf(" AND education_year_id = $%d", len(args)))
	}
	builder.WriteString(" ORDER BY created_at DESC")

	var announcements []models.Announcement
	if err := r.db.SelectContext(ctx, &announcements, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return announcements, nil
}

// Create inserts an announcement and fills in the assigned id and timestamp.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	const query = `INSERT INTO announcements (class_id, education_year_id, title, event_date, notes)
        VALUES ($1, $2, $3, $4, $5) RETURNING id, is_shared, created_at`
	if err := r.db.QueryRowxContext(ctx, query,
		announcement.ClassID, announcement.EducationYearID, announcement.Title,
		announcement.EventDate, announcement.Notes,
	).Scan(&announcement.ID, &announcement.IsShared, &announcement.CreatedAt); err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}

// Update replaces the mutable announcement columns and reports rows matched.
func (r *AnnouncementRepository) Update(ctx context.Context, announcement *models.Announcement) (int64, error) {
	const query = `UPDATE announcements
        SET title = $2, event_date = $3, is_shared = $4, shared_date = $5, notes = $6
        WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		announcement.ID, announcement.Title, announcement.EventDate,
		announcement.IsShared, announcement.SharedDate, announcement.Notes)
	if err != nil {
		return 0, fmt.Errorf("update announcement: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update announcement: %w", err)
	}
	return affected, nil
}

// Delete removes an announcement and reports how many rows went.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete announcement: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete announcement: %w", err)
	}
	return affected, nil
}
