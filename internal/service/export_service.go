package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/okulpanel/rehber-api/internal/models"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
	"github.com/okulpanel/rehber-api/pkg/export"
)

type dossierRenderer interface {
	Render(dossier export.Dossier) ([]byte, error)
}

type exportStudentReader interface {
	Get(ctx context.Context, id int64) (*models.StudentDetail, error)
}

type exportTalentReader interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.Talent, error)
}

type exportNoteReader interface {
	ListByStudent(ctx context.Context, studentID int64) ([]models.Note, error)
}

// ExportService renders printable student dossiers.
type ExportService struct {
	students  exportStudentReader
	talents   exportTalentReader
	devNotes  exportNoteReader
	evalNotes exportNoteReader
	renderer  dossierRenderer
	logger    *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(students exportStudentReader, talents exportTalentReader, devNotes, evalNotes exportNoteReader, renderer dossierRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students:  students,
		talents:   talents,
		devNotes:  devNotes,
		evalNotes: evalNotes,
		renderer:  renderer,
		logger:    logger,
	}
}

// StudentDossier renders the full record of one student as a PDF.
func (s *ExportService) StudentDossier(ctx context.Context, studentID int64) ([]byte, string, error) {
	student, err := s.students.Get(ctx, studentID)
	if err != nil {
		return nil, "", err
	}

	talents, err := s.talents.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load talents")
	}
	devNotes, err := s.devNotes.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load development notes")
	}
	evalNotes, err := s.evalNotes.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load evaluation notes")
	}

	dossier := export.Dossier{
		Title: fmt.Sprintf("%s %s", student.FirstName, student.LastName),
		Sections: []export.DossierSection{
			studentSection(student),
			parentSection("Mother", student.MotherName, student.MotherPhone, student.MotherEmail,
				student.MotherJob, student.MotherWorkAddress, student.MotherAddress, student.MotherIsGuardian),
			parentSection("Father", student.FatherName, student.FatherPhone, student.FatherEmail,
				student.FatherJob, student.FatherWorkAddress, student.FatherAddress, student.FatherIsGuardian),
			talentSection(talents),
			noteSection("Development Notes", devNotes),
			noteSection("Evaluation Notes", evalNotes),
		},
	}

	pdf, err := s.renderer.Render(dossier)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render dossier")
	}

	filename := fmt.Sprintf("student-%d-dossier.pdf", studentID)
	return pdf, filename, nil
}

func studentSection(student *models.StudentDetail) export.DossierSection {
	return export.DossierSection{
		Title: "Student",
		Rows: [][2]string{
			{"Student Number", student.StudentNumber},
			{"Birth Date", student.BirthDate},
			{"Health Info", student.HealthInfo},
			{"Special Conditions", student.SpecialConditions},
			{"Parents Together", yesNo(student.ParentsTogether)},
			{"BILSEM Eligible", yesNo(student.IsBilsem)},
		},
	}
}

func parentSection(title string, name, phone, email, job, workAddress, address *string, isGuardian *bool) export.DossierSection {
	rows := [][2]string{
		{"Name", deref(name)},
		{"Phone", deref(phone)},
		{"Email", deref(email)},
		{"Job", deref(job)},
		{"Work Address", deref(workAddress)},
		{"Address", deref(address)},
		{"Guardian", yesNo(isGuardian != nil && *isGuardian)},
	}
	return export.DossierSection{Title: title, Rows: rows}
}

func talentSection(talents []models.Talent) export.DossierSection {
	names := make([]string, 0, len(talents))
	for _, talent := range talents {
		names = append(names, talent.TalentName)
	}
	return export.DossierSection{
		Title: "Talents",
		Rows:  [][2]string{{"Labels", strings.Join(names, ", ")}},
	}
}

func noteSection(title string, notes []models.Note) export.DossierSection {
	rows := make([][2]string, 0, len(notes))
	for _, note := range notes {
		rows = append(rows, [2]string{note.Date.Format("2006-01-02"), note.Note})
	}
	if len(rows) == 0 {
		rows = append(rows, [2]string{"", "none recorded"})
	}
	return export.DossierSection{Title: title, Rows: rows}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
