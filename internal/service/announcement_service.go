package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulpanel/rehber-api/internal/models"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type announcementRepository interface {
	List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Update(ctx context.Context, announcement *models.Announcement) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// CreateAnnouncementRequest holds payload for creating announcements.
type CreateAnnouncementRequest struct {
	ClassID         int64   `json:"class_id" validate:"required"`
	EducationYearID int64   `json:"education_year_id" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	EventDate       *string `json:"event_date"`
	Notes           string  `json:"notes"`
}

// UpdateAnnouncementRequest holds payload for updating announcements,
// including the shared state transition.
type UpdateAnnouncementRequest struct {
	Title      string  `json:"title" validate:"required"`
	EventDate  *string `json:"event_date"`
	IsShared   bool    `json:"is_shared"`
	SharedDate *string `json:"shared_date"`
	Notes      string  `json:"notes"`
}

// AnnouncementService handles announcement use-cases.
type AnnouncementService struct {
	repo      announcementRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService constructs the announcement service.
func NewAnnouncementService(repo announcementRepository, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{repo: repo, validator: validate, logger: logger}
}

// List returns announcements for a class, optionally narrowed to one year.
func (s *AnnouncementService) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	announcements, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list announcements")
	}
	return announcements, nil
}

// Create registers a new announcement in the unshared state.
func (s *AnnouncementService) Create(ctx context.Context, req CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	announcement := &models.Announcement{
		ClassID:         req.ClassID,
		EducationYearID: req.EducationYearID,
		Title:           req.Title,
		EventDate:       req.EventDate,
		Notes:           req.Notes,
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create announcement")
	}
	return announcement, nil
}

// Update replaces the mutable announcement columns.
func (s *AnnouncementService) Update(ctx context.Context, id int64, req UpdateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	announcement := &models.Announcement{
		ID:         id,
		Title:      req.Title,
		EventDate:  req.EventDate,
		IsShared:   req.IsShared,
		SharedDate: req.SharedDate,
		Notes:      req.Notes,
	}
	affected, err := s.repo.Update(ctx, announcement)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update announcement")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	return announcement, nil
}

// Delete removes an announcement. A zero-row delete surfaces as not found.
func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete announcement")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	return nil
}
