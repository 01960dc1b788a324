package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulpanel/rehber-api/internal/models"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type noteRepository interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.Note, error)
	Create(ctx context.Context, note *models.Note) error
}

// CreateNoteRequest holds payload for appending a note.
type CreateNoteRequest struct {
	Note string `json:"note" validate:"required"`
}

// NoteService handles one of the append-only note streams. Two instances are
// wired at startup, one per stream.
type NoteService struct {
	kind      models.NoteKind
	repo      noteRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoteService constructs a note service for the given stream.
func NewNoteService(kind models.NoteKind, repo noteRepository, validate *validator.Validate, logger *zap.Logger) *NoteService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{kind: kind, repo: repo, validator: validate, logger: logger}
}

// ListByStudent returns a student's notes, newest first.
func (s *NoteService) ListByStudent(ctx context.Context, studentID int64) ([]models.Note, error) {
	notes, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list "+string(s.kind)+" notes")
	}
	return notes, nil
}

// Create appends a note; the server assigns the timestamp.
func (s *NoteService) Create(ctx context.Context, studentID int64, req CreateNoteRequest) (*models.Note, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid note payload")
	}
	note := &models.Note{StudentID: studentID, Note: req.Note}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create "+string(s.kind)+" note")
	}
	return note, nil
}
