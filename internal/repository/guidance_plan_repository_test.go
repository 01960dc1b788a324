package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulpanel/rehber-api/internal/models"
)

func TestGuidancePlanRepositoryListFiltersByYear(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGuidancePlanRepository(db)

	yearID := int64(1)
	rows := sqlmock.NewRows([]string{"id", "class_id", "education_year_id", "date", "topic", "description", "created_at"}).
		AddRow(int64(1), int64(3), yearID, "2025-09-15", "Adjustment", "", time.Now())
	mock.ExpectQuery("FROM guidance_plans WHERE class_id = \\$1 AND education_year_id = \\$2 ORDER BY date ASC").
		WithArgs(int64(3), yearID).
		WillReturnRows(rows)

	plans, err := repo.List(context.Background(), models.GuidancePlanFilter{ClassID: 3, EducationYearID: &yearID})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "Adjustment", plans[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuidancePlanRepositoryDeleteCascadesEvents(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGuidancePlanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT file_path FROM guidance_events WHERE plan_id = $1 AND file_path IS NOT NULL")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"file_path"}).AddRow("a1b2.pdf").AddRow("c3d4.docx"))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM guidance_events WHERE plan_id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM guidance_plans WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, orphaned, err := repo.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, []string{"a1b2.pdf", "c3d4.docx"}, orphaned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuidancePlanRepositoryDeleteUnknownID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGuidancePlanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT file_path FROM guidance_events").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"file_path"}))
	mock.ExpectExec("DELETE FROM guidance_events").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM guidance_plans").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, orphaned, err := repo.Delete(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Empty(t, orphaned)
	assert.NoError(t, mock.ExpectationsWereMet())
}
