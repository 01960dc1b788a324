package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulpanel/rehber-api/internal/models"
)

func TestEducationYearRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEducationYearRepository(db)

	rows := sqlmock.NewRows([]string{"id", "year", "is_active"}).
		AddRow(int64(2), "2026-2027", true).
		AddRow(int64(1), "2025-2026", true)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, year, is_active FROM education_years ORDER BY year DESC")).
		WillReturnRows(rows)

	years, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, years, 2)
	assert.Equal(t, "2026-2027", years[0].Year)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEducationYearRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEducationYearRepository(db)

	mock.ExpectQuery("INSERT INTO education_years").
		WithArgs("2026-2027").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active"}).AddRow(int64(2), true))

	year := &models.EducationYear{Year: "2026-2027"}
	require.NoError(t, repo.Create(context.Background(), year))
	assert.Equal(t, int64(2), year.ID)
	assert.True(t, year.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEducationYearRepositoryCreateDuplicate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEducationYearRepository(db)

	mock.ExpectQuery("INSERT INTO education_years").
		WithArgs("2025-2026").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.EducationYear{Year: "2025-2026"})
	assert.ErrorIs(t, err, ErrDuplicateYear)
	assert.NoError(t, mock.ExpectationsWereMet())
}
