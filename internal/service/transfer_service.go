package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type transferRepository interface {
	Transfer(ctx context.Context, studentIDs []int64, targetClassID, targetYearID int64) (int64, error)
}

// TransferRequest is the batch class/year reassignment payload.
type TransferRequest struct {
	StudentIDs            []int64 `json:"student_ids"`
	TargetClassID         int64   `json:"target_class_id"`
	TargetEducationYearID int64   `json:"target_education_year_id"`
}

// TransferResult reports both what was asked for and what actually changed.
type TransferResult struct {
	Message          string `json:"message"`
	RequestedCount   int    `json:"requested_count"`
	TransferredCount int64  `json:"transferred_count"`
}

// TransferService moves batches of students to a new class and year.
type TransferService struct {
	students transferRepository
	classes  classRepository
	logger   *zap.Logger
}

// NewTransferService constructs the transfer service.
func NewTransferService(students transferRepository, classes classRepository, logger *zap.Logger) *TransferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransferService{students: students, classes: classes, logger: logger}
}

// Transfer validates the batch and applies it atomically. Nothing is written
// when the id list is empty, a target is missing, or the target class does not
// belong to the target education year.
func (s *TransferService) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	if len(req.StudentIDs) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student ids are required")
	}
	if req.TargetClassID == 0 || req.TargetEducationYearID == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "target class and education year are required")
	}

	ok, err := s.classes.BelongsToYear(ctx, req.TargetClassID, req.TargetEducationYearID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify target class")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "target class does not belong to target education year")
	}

	transferred, err := s.students.Transfer(ctx, req.StudentIDs, req.TargetClassID, req.TargetEducationYearID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to transfer students")
	}

	s.logger.Info("students transferred",
		zap.Int("requested", len(req.StudentIDs)),
		zap.Int64("transferred", transferred),
		zap.Int64("target_class_id", req.TargetClassID),
		zap.Int64("target_education_year_id", req.TargetEducationYearID),
	)

	return &TransferResult{
		Message:          fmt.Sprintf("%d students transferred", transferred),
		RequestedCount:   len(req.StudentIDs),
		TransferredCount: transferred,
	}, nil
}
