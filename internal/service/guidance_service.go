package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulpanel/rehber-api/internal/models"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type guidancePlanRepository interface {
	List(ctx context.Context, filter models.GuidancePlanFilter) ([]models.GuidancePlan, error)
	Create(ctx context.Context, plan *models.GuidancePlan) error
	Update(ctx context.Context, plan *models.GuidancePlan) (int64, error)
	Delete(ctx context.Context, id int64) (int64, []string, error)
}

type guidanceEventRepository interface {
	ListByPlan(ctx context.Context, planID int64) ([]models.GuidanceEvent, error)
	Create(ctx context.Context, event *models.GuidanceEvent) error
	Update(ctx context.Context, event *models.GuidanceEvent, newFile *string) (int64, *string, error)
	Delete(ctx context.Context, id int64) (int64, *string, error)
}

// CreateGuidancePlanRequest holds payload for creating guidance plans.
type CreateGuidancePlanRequest struct {
	ClassID         int64  `json:"class_id" validate:"required"`
	EducationYearID int64  `json:"education_year_id" validate:"required"`
	Date            string `json:"date" validate:"required"`
	Topic           string `json:"topic" validate:"required"`
	Description     string `json:"description"`
}

// UpdateGuidancePlanRequest holds payload for updating guidance plans.
type UpdateGuidancePlanRequest struct {
	Date        string `json:"date" validate:"required"`
	Topic       string `json:"topic" validate:"required"`
	Description string `json:"description"`
}

// GuidanceEventRequest holds the multipart form payload for guidance events.
type GuidanceEventRequest struct {
	PlanID      int64  `form:"plan_id"`
	Date        string `form:"date" validate:"required"`
	EventName   string `form:"event_name" validate:"required"`
	Description string `form:"description"`
}

// GuidanceService handles counseling plans and their events, including
// attachment lifecycle against the upload store.
type GuidanceService struct {
	plans     guidancePlanRepository
	events    guidanceEventRepository
	files     FileStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGuidanceService constructs the guidance service.
func NewGuidanceService(plans guidancePlanRepository, events guidanceEventRepository, files FileStore, validate *validator.Validate, logger *zap.Logger) *GuidanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuidanceService{plans: plans, events: events, files: files, validator: validate, logger: logger}
}

// ListPlans returns the plans of a class, optionally narrowed to one year.
func (s *GuidanceService) ListPlans(ctx context.Context, filter models.GuidancePlanFilter) ([]models.GuidancePlan, error) {
	plans, err := s.plans.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list guidance plans")
	}
	return plans, nil
}

// CreatePlan registers a new guidance plan.
func (s *GuidanceService) CreatePlan(ctx context.Context, req CreateGuidancePlanRequest) (*models.GuidancePlan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid guidance plan payload")
	}
	plan := &models.GuidancePlan{
		ClassID:         req.ClassID,
		EducationYearID: req.EducationYearID,
		Date:            req.Date,
		Topic:           req.Topic,
		Description:     req.Description,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create guidance plan")
	}
	return plan, nil
}

// UpdatePlan replaces a plan's date, topic and description.
func (s *GuidanceService) UpdatePlan(ctx context.Context, id int64, req UpdateGuidancePlanRequest) (*models.GuidancePlan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid guidance plan payload")
	}
	plan := &models.GuidancePlan{ID: id, Date: req.Date, Topic: req.Topic, Description: req.Description}
	affected, err := s.plans.Update(ctx, plan)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update guidance plan")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "guidance plan not found")
	}
	return plan, nil
}

// DeletePlan removes a plan together with its events. Attachment files of the
// removed events are deleted best-effort afterwards.
func (s *GuidanceService) DeletePlan(ctx context.Context, id int64) error {
	deleted, orphanedFiles, err := s.plans.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete guidance plan")
	}
	if deleted == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "guidance plan not found")
	}
	s.removeFiles(orphanedFiles)
	return nil
}

// ListEvents returns the events of a plan.
func (s *GuidanceService) ListEvents(ctx context.Context, planID int64) ([]models.GuidanceEvent, error) {
	events, err := s.events.ListByPlan(ctx, planID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list guidance events")
	}
	return events, nil
}

// CreateEvent registers a new event, storing the optional attachment first.
func (s *GuidanceService) CreateEvent(ctx context.Context, req GuidanceEventRequest, attachment *UploadedFile) (*models.GuidanceEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid guidance event payload")
	}
	if req.PlanID == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "plan id is required")
	}

	event := &models.GuidanceEvent{
		PlanID:      req.PlanID,
		Date:        req.Date,
		EventName:   req.EventName,
		Description: req.Description,
	}
	if attachment != nil {
		filename, err := s.files.Save(attachment.Name, attachment.Reader)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store attachment")
		}
		event.FilePath = &filename
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create guidance event")
	}
	return event, nil
}

// UpdateEvent replaces an event. A new attachment replaces and removes the old
// file; without one the existing reference is kept.
func (s *GuidanceService) UpdateEvent(ctx context.Context, id int64, req GuidanceEventRequest, attachment *UploadedFile) (*models.GuidanceEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid guidance event payload")
	}

	event := &models.GuidanceEvent{ID: id, Date: req.Date, EventName: req.EventName, Description: req.Description}

	var newFile *string
	if attachment != nil {
		filename, err := s.files.Save(attachment.Name, attachment.Reader)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store attachment")
		}
		newFile = &filename
		event.FilePath = &filename
	}

	affected, previous, err := s.events.Update(ctx, event, newFile)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update guidance event")
	}
	if affected == 0 {
		// The row vanished under us; the attachment we just stored is unreachable.
		if newFile != nil {
			s.removeFiles([]string{*newFile})
		}
		return nil, appErrors.Clone(appErrors.ErrNotFound, "guidance event not found")
	}
	if previous != nil {
		s.removeFiles([]string{*previous})
	}
	return event, nil
}

// DeleteEvent removes an event and its attachment file.
func (s *GuidanceService) DeleteEvent(ctx context.Context, id int64) error {
	affected, filePath, err := s.events.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete guidance event")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "guidance event not found")
	}
	if filePath != nil {
		s.removeFiles([]string{*filePath})
	}
	return nil
}

func (s *GuidanceService) removeFiles(filenames []string) {
	for _, filename := range filenames {
		if err := s.files.Delete(filename); err != nil {
			s.logger.Warn("orphaned attachment not removed", zap.String("file", filename), zap.Error(err))
		}
	}
}
