package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulpanel/rehber-api/internal/models"
	"github.com/okulpanel/rehber-api/internal/repository"
	"github.com/okulpanel/rehber-api/internal/service"
	"github.com/okulpanel/rehber-api/pkg/response"
)

type yearRepoMock struct {
	years     []models.EducationYear
	duplicate bool
}

func (m *yearRepoMock) List(ctx context.Context) ([]models.EducationYear, error) {
	return m.years, nil
}

func (m *yearRepoMock) Create(ctx context.Context, year *models.EducationYear) error {
	if m.duplicate {
		return repository.ErrDuplicateYear
	}
	year.ID = 1
	year.IsActive = true
	return nil
}

func TestEducationYearHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewEducationYearService(&yearRepoMock{years: []models.EducationYear{
		{ID: 2, Year: "2026-2027", IsActive: true},
		{ID: 1, Year: "2025-2026", IsActive: true},
	}}, nil, nil)
	handler := NewEducationYearHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/education-years", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []models.EducationYear `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "2026-2027", envelope.Data[0].Year)
}

func TestEducationYearHandlerCreateDuplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewEducationYearService(&yearRepoMock{duplicate: true}, nil, nil)
	handler := NewEducationYearHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.CreateEducationYearRequest{Year: "2025-2026"})
	c.Request, _ = http.NewRequest(http.MethodPost, "/education-years", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	require.Equal(t, http.StatusConflict, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "education year already exists", envelope.Error.Message)
}

func TestEducationYearHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewEducationYearService(&yearRepoMock{}, nil, nil)
	handler := NewEducationYearHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/education-years", bytes.NewReader([]byte(`not json`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
