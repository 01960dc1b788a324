package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulpanel/rehber-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestStudentRepositoryListByClass(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "photo", "first_name", "last_name", "student_number", "birth_date",
		"class_id", "education_year_id", "is_active", "health_info", "parents_together",
		"is_bilsem", "special_conditions", "created_at",
		"mother_name", "mother_phone", "mother_email",
		"father_name", "father_phone", "father_email",
	}).AddRow(
		int64(1), nil, "Ayse", "Demir", "101", "2012-04-03",
		int64(3), int64(1), true, "", true,
		false, "", time.Now(),
		"Fatma Demir", "+90 555 111 2233", nil,
		nil, nil, nil,
	)
	mock.ExpectQuery("SELECT s.id, s.photo").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	students, err := repo.ListByClass(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Ayse", students[0].FirstName)
	require.NotNil(t, students[0].MotherName)
	assert.Equal(t, "Fatma Demir", *students[0].MotherName)
	assert.Nil(t, students[0].FatherName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery("SELECT s.id, s.photo").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	created := time.Now()
	mock.ExpectQuery("INSERT INTO students").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	student := &models.Student{FirstName: "Ali", LastName: "Kaya", ClassID: 3, EducationYearID: 1, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), student))
	assert.Equal(t, int64(7), student.ID)
	assert.Equal(t, created, student.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Student{ID: 99, FirstName: "Ali", LastName: "Kaya"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdatePhotoReturnsPrevious(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT photo FROM students WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"photo"}).AddRow("old-photo.jpg"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET photo = $2 WHERE id = $1")).
		WithArgs(int64(5), "new-photo.jpg").
		WillReturnResult(sqlmock.NewResult(0, 1))

	previous, err := repo.UpdatePhoto(context.Background(), 5, "new-photo.jpg")
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, "old-photo.jpg", *previous)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositorySetParentUpserts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO mother_info").
		WithArgs(int64(5), "Fatma Demir", "+90 555 111 2233", "", "", "", "", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetParent(context.Background(), ParentRoleMother, &models.ParentInfo{
		StudentID:  5,
		Name:       "Fatma Demir",
		Phone:      "+90 555 111 2233",
		IsGuardian: true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryClearParentReportsCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM father_info WHERE student_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.ClearParent(context.Background(), ParentRoleFather, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryTransferCommits(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	for _, id := range []int64{1, 2, 3} {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET class_id = $1, education_year_id = $2 WHERE id = $3")).
			WithArgs(int64(9), int64(2), id).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	transferred, err := repo.Transfer(context.Background(), []int64{1, 2, 3}, 9, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), transferred)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryTransferCountsMissingRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE students SET class_id").
		WithArgs(int64(9), int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE students SET class_id").
		WithArgs(int64(9), int64(2), int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	transferred, err := repo.Transfer(context.Background(), []int64{1, 404}, 9, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), transferred)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryTransferRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE students SET class_id").
		WithArgs(int64(9), int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE students SET class_id").
		WithArgs(int64(9), int64(2), int64(2)).
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	transferred, err := repo.Transfer(context.Background(), []int64{1, 2}, 9, 2)
	assert.Error(t, err)
	assert.Zero(t, transferred)
	assert.NoError(t, mock.ExpectationsWereMet())
}
