package service

import (
	"context"
	"database/sql"
	"io"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulpanel/rehber-api/internal/models"
	"github.com/okulpanel/rehber-api/internal/repository"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

// phonePattern accepts digits, +, -, parentheses and whitespace only.
var phonePattern = regexp.MustCompile(`^[0-9+\s\-()]*$`)

type studentRepository interface {
	ListByClass(ctx context.Context, classID int64) ([]models.StudentSummary, error)
	FindByID(ctx context.Context, id int64) (*models.StudentDetail, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	UpdatePhoto(ctx context.Context, id int64, filename string) (*string, error)
	SetParent(ctx context.Context, role repository.ParentRole, info *models.ParentInfo) error
	ClearParent(ctx context.Context, role repository.ParentRole, studentID int64) (int64, error)
}

// FileStore abstracts the upload directory for photo and attachment handling.
type FileStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Delete(filename string) error
}

// UploadedFile carries one incoming multipart file into the service layer.
type UploadedFile struct {
	Name   string
	Reader io.Reader
}

// ParentFields groups the per-role form fields of a student payload. A blank
// Name means the parent record is absent (or, on update, to be cleared).
type ParentFields struct {
	Name        string `form:"name"`
	Phone       string `form:"phone"`
	Email       string `form:"email"`
	Job         string `form:"job"`
	WorkAddress string `form:"work_address"`
	Address     string `form:"address"`
	IsGuardian  bool   `form:"is_guardian"`
}

// CreateStudentRequest holds the multipart form payload for creating students.
type CreateStudentRequest struct {
	FirstName         string `form:"first_name" validate:"required"`
	LastName          string `form:"last_name" validate:"required"`
	StudentNumber     string `form:"student_number" validate:"required"`
	BirthDate         string `form:"birth_date"`
	ClassID           int64  `form:"class_id" validate:"required"`
	EducationYearID   int64  `form:"education_year_id" validate:"required"`
	HealthInfo        string `form:"health_info"`
	ParentsTogether   bool   `form:"parents_together"`
	IsBilsem          bool   `form:"is_bilsem"`
	SpecialConditions string `form:"special_conditions"`

	MotherName        string `form:"mother_name"`
	MotherPhone       string `form:"mother_phone"`
	MotherEmail       string `form:"mother_email"`
	MotherJob         string `form:"mother_job"`
	MotherWorkAddress string `form:"mother_work_address"`
	MotherAddress     string `form:"mother_address"`
	MotherIsGuardian  bool   `form:"mother_is_guardian"`

	FatherName        string `form:"father_name"`
	FatherPhone       string `form:"father_phone"`
	FatherEmail       string `form:"father_email"`
	FatherJob         string `form:"father_job"`
	FatherWorkAddress string `form:"father_work_address"`
	FatherAddress     string `form:"father_address"`
	FatherIsGuardian  bool   `form:"father_is_guardian"`
}

// UpdateStudentRequest holds the multipart form payload for updating students.
// Updates are full-row replace, including the active flag.
type UpdateStudentRequest struct {
	CreateStudentRequest
	IsActive bool `form:"is_active"`
}

// StudentService handles student use-cases including the two parent slots.
type StudentService struct {
	repo      studentRepository
	files     FileStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, files FileStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, files: files, validator: validate, logger: logger}
}

// ListByClass returns the active roster of one class.
func (s *StudentService) ListByClass(ctx context.Context, classID int64) ([]models.StudentSummary, error) {
	students, err := s.repo.ListByClass(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns the full student detail.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.StudentDetail, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create registers a new student plus any supplied parent records. Phone
// fields are checked before anything is written or stored.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest, photo *UploadedFile) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if err := validateParentPhones(req.MotherPhone, req.FatherPhone); err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		StudentNumber:     req.StudentNumber,
		BirthDate:         req.BirthDate,
		ClassID:           req.ClassID,
		EducationYearID:   req.EducationYearID,
		IsActive:          true,
		HealthInfo:        req.HealthInfo,
		ParentsTogether:   req.ParentsTogether,
		IsBilsem:          req.IsBilsem,
		SpecialConditions: req.SpecialConditions,
	}

	if photo != nil {
		filename, err := s.files.Save(photo.Name, photo.Reader)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store photo")
		}
		student.Photo = &filename
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}

	if err := s.applyParent(ctx, repository.ParentRoleMother, student.ID, req.motherFields(), false); err != nil {
		return nil, err
	}
	if err := s.applyParent(ctx, repository.ParentRoleFather, student.ID, req.fatherFields(), false); err != nil {
		return nil, err
	}

	return s.Get(ctx, student.ID)
}

// Update replaces a student row and reconciles both parent slots: a non-blank
// name upserts every field of that slot, a blank name removes the record.
func (s *StudentService) Update(ctx context.Context, id int64, req UpdateStudentRequest, photo *UploadedFile) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if err := validateParentPhones(req.MotherPhone, req.FatherPhone); err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:                id,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		StudentNumber:     req.StudentNumber,
		BirthDate:         req.BirthDate,
		ClassID:           req.ClassID,
		EducationYearID:   req.EducationYearID,
		IsActive:          req.IsActive,
		HealthInfo:        req.HealthInfo,
		ParentsTogether:   req.ParentsTogether,
		IsBilsem:          req.IsBilsem,
		SpecialConditions: req.SpecialConditions,
	}
	if err := s.repo.Update(ctx, student); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}

	if photo != nil {
		filename, err := s.files.Save(photo.Name, photo.Reader)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store photo")
		}
		previous, err := s.repo.UpdatePhoto(ctx, id, filename)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update photo")
		}
		if previous != nil {
			if err := s.files.Delete(*previous); err != nil {
				s.logger.Warn("orphaned photo not removed", zap.String("file", *previous), zap.Error(err))
			}
		}
	}

	if err := s.applyParent(ctx, repository.ParentRoleMother, id, req.motherFields(), true); err != nil {
		return nil, err
	}
	if err := s.applyParent(ctx, repository.ParentRoleFather, id, req.fatherFields(), true); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// applyParent maps name presence onto the explicit set/clear repository
// operations. Whitespace-only names count as absent.
func (s *StudentService) applyParent(ctx context.Context, role repository.ParentRole, studentID int64, fields ParentFields, clearWhenBlank bool) error {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		if !clearWhenBlank {
			return nil
		}
		if _, err := s.repo.ClearParent(ctx, role, studentID); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear "+string(role)+" info")
		}
		return nil
	}

	info := &models.ParentInfo{
		StudentID:   studentID,
		Name:        name,
		Phone:       fields.Phone,
		Email:       fields.Email,
		Job:         fields.Job,
		WorkAddress: fields.WorkAddress,
		Address:     fields.Address,
		IsGuardian:  fields.IsGuardian,
	}
	if err := s.repo.SetParent(ctx, role, info); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save "+string(role)+" info")
	}
	return nil
}

func (r CreateStudentRequest) motherFields() ParentFields {
	return ParentFields{
		Name:        r.MotherName,
		Phone:       r.MotherPhone,
		Email:       r.MotherEmail,
		Job:         r.MotherJob,
		WorkAddress: r.MotherWorkAddress,
		Address:     r.MotherAddress,
		IsGuardian:  r.MotherIsGuardian,
	}
}

func (r CreateStudentRequest) fatherFields() ParentFields {
	return ParentFields{
		Name:        r.FatherName,
		Phone:       r.FatherPhone,
		Email:       r.FatherEmail,
		Job:         r.FatherJob,
		WorkAddress: r.FatherWorkAddress,
		Address:     r.FatherAddress,
		IsGuardian:  r.FatherIsGuardian,
	}
}

func validateParentPhones(motherPhone, fatherPhone string) error {
	if motherPhone != "" && !phonePattern.MatchString(motherPhone) {
		return appErrors.Clone(appErrors.ErrValidation, "mother phone may only contain digits, +, -, parentheses and spaces")
	}
	if fatherPhone != "" && !phonePattern.MatchString(fatherPhone) {
		return appErrors.Clone(appErrors.ErrValidation, "father phone may only contain digits, +, -, parentheses and spaces")
	}
	return nil
}
