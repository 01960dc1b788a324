package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulpanel/rehber-api/internal/models"
	"github.com/okulpanel/rehber-api/internal/repository"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type mockEducationYearRepo struct {
	years  map[string]int64
	nextID int64
}

func newMockEducationYearRepo() *mockEducationYearRepo {
	return &mockEducationYearRepo{years: make(map[string]int64), nextID: 1}
}

func (m *mockEducationYearRepo) List(ctx context.Context) ([]models.EducationYear, error) {
	var out []models.EducationYear
	for label, id := range m.years {
		out = append(out, models.EducationYear{ID: id, Year: label, IsActive: true})
	}
	return out, nil
}

func (m *mockEducationYearRepo) Create(ctx context.Context, year *models.EducationYear) error {
	if _, ok := m.years[year.Year]; ok {
		return repository.ErrDuplicateYear
	}
	year.ID = m.nextID
	year.IsActive = true
	m.nextID++
	m.years[year.Year] = year.ID
	return nil
}

func TestEducationYearServiceCreate(t *testing.T) {
	svc := NewEducationYearService(newMockEducationYearRepo(), nil, nil)

	year, err := svc.Create(context.Background(), CreateEducationYearRequest{Year: "2026-2027"})
	require.NoError(t, err)
	assert.Equal(t, "2026-2027", year.Year)
	assert.True(t, year.IsActive)
}

func TestEducationYearServiceCreateDuplicate(t *testing.T) {
	repo := newMockEducationYearRepo()
	svc := NewEducationYearService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateEducationYearRequest{Year: "2025-2026"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateEducationYearRequest{Year: "2025-2026"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, "education year already exists", appErr.Message)
}

func TestEducationYearServiceCreateRequiresLabel(t *testing.T) {
	svc := NewEducationYearService(newMockEducationYearRepo(), nil, nil)

	_, err := svc.Create(context.Background(), CreateEducationYearRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
