package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulpanel/rehber-api/internal/models"
	"github.com/okulpanel/rehber-api/internal/repository"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type educationYearRepository interface {
	List(ctx context.Context) ([]models.EducationYear, error)
	Create(ctx context.Context, year *models.EducationYear) error
}

// CreateEducationYearRequest holds payload for creating education years.
type CreateEducationYearRequest struct {
	Year string `json:"year" validate:"required"`
}

// EducationYearService handles education-year use-cases.
type EducationYearService struct {
	repo      educationYearRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEducationYearService constructs the education-year service.
func NewEducationYearService(repo educationYearRepository, validate *validator.Validate, logger *zap.Logger) *EducationYearService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EducationYearService{repo: repo, validator: validate, logger: logger}
}

// List returns every education year.
func (s *EducationYearService) List(ctx context.Context) ([]models.EducationYear, error) {
	years, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list education years")
	}
	return years, nil
}

// Create registers a new education year. Duplicate labels are rejected.
func (s *EducationYearService) Create(ctx context.Context, req CreateEducationYearRequest) (*models.EducationYear, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid education year payload")
	}
	year := &models.EducationYear{Year: req.Year}
	if err := s.repo.Create(ctx, year); err != nil {
		if errors.Is(err, repository.ErrDuplicateYear) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "education year already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create education year")
	}
	return year, nil
}
