package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/okulpanel/rehber-api/internal/models"
)

// ParentRole selects which parent slot an operation addresses.
type ParentRole string

const (
	ParentRoleMother ParentRole = "mother"
	ParentRoleFather ParentRole = "father"
)

func (role ParentRole) table() string {
	if role == ParentRoleFather {
		return "father_info"
	}
	return "mother_info"
}

// StudentRepository manages persistence for students and their parent slots.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListByClass returns the active students of a class with parent contact
// columns projected through outer joins, ordered by last then first name.
func (r *StudentRepository) ListByClass(ctx context.Context, classID int64) ([]models.StudentSummary, error) {
	const query = `SELECT s.id, s.photo, s.first_name, s.last_name, s.student_number, s.birth_date,
        s.class_id, s.education_year_id, s.is_active, s.health_info, s.parents_together,
        s.is_bilsem, s.special_conditions, s.created_at,
        m.name AS mother_name, m.phone AS mother_phone, m.email AS mother_email,
        f.name AS father_name, f.phone AS father_phone, f.email AS father_email
        FROM students s
        LEFT JOIN mother_info m ON m.student_id = s.id
        LEFT JOIN father_info f ON f.student_id = s.id
        WHERE s.class_id = $1 AND s.is_active = TRUE
        ORDER BY s.last_name, s.first_name`
	var students []models.StudentSummary
	if err := r.db.SelectContext(ctx, &students, query, classID); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches one student with every mother and father column.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	const query = `SELECT s.id, s.photo, s.first_name, s.last_name, s.student_number, s.birth_date,
        s.class_id, s.education_year_id, s.is_active, s.health_info, s.parents_together,
        s.is_bilsem, s.special_conditions, s.created_at,
        m.name AS mother_name, m.phone AS mother_phone, m.email AS mother_email,
        m.job AS mother_job, m.work_address AS mother_work_address, m.address AS mother_address,
        m.is_guardian AS mother_is_guardian,
        f.name AS father_name, f.phone AS father_phone, f.email AS father_email,
        f.job AS father_job, f.work_address AS father_work_address, f.address AS father_address,
        f.is_guardian AS father_is_guardian
        FROM students s
        LEFT JOIN mother_info m ON m.student_id = s.id
        LEFT JOIN father_info f ON f.student_id = s.id
        WHERE s.id = $1`
	var detail models.StudentDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Create inserts a new student row and fills in the assigned id and timestamp.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO students
        (photo, first_name, last_name, student_number, birth_date, class_id, education_year_id,
         is_active, health_info, parents_together, is_bilsem, special_conditions)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at`
	if err := r.db.QueryRowxContext(ctx, query,
		student.Photo, student.FirstName, student.LastName, student.StudentNumber,
		student.BirthDate, student.ClassID, student.EducationYearID, student.IsActive,
		student.HealthInfo, student.ParentsTogether, student.IsBilsem, student.SpecialConditions,
	).Scan(&student.ID, &student.CreatedAt); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update replaces every mutable student column except the photo reference.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET
        first_name = :first_name, last_name = :last_name, student_number = :student_number,
        birth_date = :birth_date, class_id = :class_id, education_year_id = :education_year_id,
        is_active = :is_active, health_info = :health_info, parents_together = :parents_together,
        is_bilsem = :is_bilsem, special_conditions = :special_conditions
        WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdatePhoto swaps the stored photo reference and returns the previous one so
// the caller can remove the orphaned file.
func (r *StudentRepository) UpdatePhoto(ctx context.Context, id int64, filename string) (*string, error) {
	var previous *string
	if err := r.db.GetContext(ctx, &previous, `SELECT photo FROM students WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("load student photo: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE students SET photo = $2 WHERE id = $1`, id, filename); err != nil {
		return nil, fmt.Errorf("update student photo: %w", err)
	}
	return previous, nil
}

// SetParent upserts the parent slot for a student, overwriting every field.
func (r *StudentRepository) SetParent(ctx context.Context, role ParentRole, info *models.ParentInfo) error {
	query := fmt.Sprintf(`INSERT INTO %s
        (student_id, name, phone, email, job, work_address, address, is_guardian)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (student_id) DO UPDATE SET
        name = EXCLUDED.name, phone = EXCLUDED.phone, email = EXCLUDED.email,
        job = EXCLUDED.job, work_address = EXCLUDED.work_address,
        address = EXCLUDED.address, is_guardian = EXCLUDED.is_guardian`, role.table())
	if _, err := r.db.ExecContext(ctx, query,
		info.StudentID, info.Name, info.Phone, info.Email,
		info.Job, info.WorkAddress, info.Address, info.IsGuardian,
	); err != nil {
		return fmt.Errorf("set %s info: %w", role, err)
	}
	return nil
}

// ClearParent removes the parent slot entirely and reports how many rows went.
func (r *StudentRepository) ClearParent(ctx context.Context, role ParentRole, studentID int64) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE student_id = $1`, role.table())
	result, err := r.db.ExecContext(ctx, query, studentID)
	if err != nil {
		return 0, fmt.Errorf("clear %s info: %w", role, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear %s info: %w", role, err)
	}
	return affected, nil
}

// Transfer reassigns the given students to the target class and education year
// inside one transaction. Any row failure rolls the whole batch back. The
// returned count is the number of rows actually modified, which is lower than
// the request size when ids do not exist.
func (r *StudentRepository) Transfer(ctx context.Context, studentIDs []int64, targetClassID, targetYearID int64) (transferred int64, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transfer transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const query = `UPDATE students SET class_id = $1, education_year_id = $2 WHERE id = $3`
	for _, studentID := range studentIDs {
		result, execErr := tx.ExecContext(ctx, query, targetClassID, targetYearID, studentID)
		if execErr != nil {
			err = fmt.Errorf("transfer student %d: %w", studentID, execErr)
			return 0, err
		}
		affected, raErr := result.RowsAffected()
		if raErr != nil {
			err = fmt.Errorf("transfer student %d: %w", studentID, raErr)
			return 0, err
		}
		transferred += affected
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transfer: %w", err)
	}
	return transferred, nil
}
