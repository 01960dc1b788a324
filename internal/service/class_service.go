package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulpanel/rehber-api/internal/models"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type classRepository interface {
	ListByYear(ctx context.Context, educationYearID int64) ([]models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	BelongsToYear(ctx context.Context, classID, educationYearID int64) (bool, error)
}

// CreateClassRequest holds payload for creating classes.
type CreateClassRequest struct {
	Name            string `json:"name" validate:"required"`
	EducationYearID int64  `json:"education_year_id" validate:"required"`
}

// ClassService handles class use-cases.
type ClassService struct {
	repo      classRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs the class service.
func NewClassService(repo classRepository, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, validator: validate, logger: logger}
}

// ListByYear returns the classes of an education year.
func (s *ClassService) ListByYear(ctx context.Context, educationYearID int64) ([]models.Class, error) {
	classes, err := s.repo.ListByYear(ctx, educationYearID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// Create registers a new class inside an education year.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	class := &models.Class{Name: req.Name, EducationYearID: req.EducationYearID}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	return class, nil
}
