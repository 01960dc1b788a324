package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulpanel/rehber-api/internal/models"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type talentRepository interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.Talent, error)
	Create(ctx context.Context, talent *models.Talent) error
}

// CreateTalentRequest holds payload for attaching a talent label.
type CreateTalentRequest struct {
	TalentName string `json:"talent_name" validate:"required"`
}

// TalentService handles talent-label use-cases.
type TalentService struct {
	repo      talentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTalentService constructs the talent service.
func NewTalentService(repo talentRepository, validate *validator.Validate, logger *zap.Logger) *TalentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TalentService{repo: repo, validator: validate, logger: logger}
}

// ListByStudent returns a student's talent labels.
func (s *TalentService) ListByStudent(ctx context.Context, studentID int64) ([]models.Talent, error) {
	talents, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list talents")
	}
	return talents, nil
}

// Create attaches a talent label to a student.
func (s *TalentService) Create(ctx context.Context, studentID int64, req CreateTalentRequest) (*models.Talent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid talent payload")
	}
	talent := &models.Talent{StudentID: studentID, TalentName: req.TalentName}
	if err := s.repo.Create(ctx, talent); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create talent")
	}
	return talent, nil
}
