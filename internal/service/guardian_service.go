package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulpanel/rehber-api/internal/models"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type guardianRepository interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.Guardian, error)
	Create(ctx context.Context, guardian *models.Guardian) error
	Update(ctx context.Context, guardian *models.Guardian) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// GuardianRequest holds payload for creating or updating guardians.
type GuardianRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
}

// GuardianService handles non-parent caregiver use-cases.
type GuardianService struct {
	repo      guardianRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGuardianService constructs the guardian service.
func NewGuardianService(repo guardianRepository, validate *validator.Validate, logger *zap.Logger) *GuardianService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuardianService{repo: repo, validator: validate, logger: logger}
}

// ListByStudent returns a student's guardians.
func (s *GuardianService) ListByStudent(ctx context.Context, studentID int64) ([]models.Guardian, error) {
	guardians, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list guardians")
	}
	return guardians, nil
}

// Create attaches a guardian to a student.
func (s *GuardianService) Create(ctx context.Context, studentID int64, req GuardianRequest) (*models.Guardian, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid guardian payload")
	}
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "guardian phone may only contain digits, +, -, parentheses and spaces")
	}
	guardian := &models.Guardian{
		StudentID:    studentID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
	}
	if err := s.repo.Create(ctx, guardian); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create guardian")
	}
	return guardian, nil
}

// Update overwrites a guardian record. Unknown ids surface as not found.
func (s *GuardianService) Update(ctx context.Context, id int64, req GuardianRequest) (*models.Guardian, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid guardian payload")
	}
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "guardian phone may only contain digits, +, -, parentheses and spaces")
	}
	guardian := &models.Guardian{
		ID:           id,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
	}
	affected, err := s.repo.Update(ctx, guardian)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update guardian")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "guardian not found")
	}
	return guardian, nil
}

// Delete removes a guardian. A zero-row delete surfaces as not found.
func (s *GuardianService) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete guardian")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "guardian not found")
	}
	return nil
}
