package handler

import (
	"context"
	"database/sql"
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
)

type studentRepoMock struct {
	detail *models.StudentDetail
}

func (m *studentRepoMock) ListByClass(ctx context.Context, classID int64) ([]models.StudentSummary, error) {
	return nil, nil
}

func (m *studentRepoMock) FindByID(ctx context.Context, id int64) (*models.StudentDetail, error) {
	if m.detail == nil || m.detail.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.detail, nil
}

func (m *studentRepoMock) Create(ctx context.Context, student *models.Student) error {
	return nil
}

func (m *studentRepoMock) Update(ctx context.Context, student *models.Student) error {
	return nil
}

func (m *studentRepoMock) UpdatePhoto(ctx context.Context, id int64, filename string) (*string, error) {
	return nil, nil
}

func (m *studentRepoMock) SetParent(ctx context.Context, role repository.ParentRole, info *models.ParentInfo) error {
	return nil
}

func (m *studentRepoMock) ClearParent(ctx context.Context, role repository.ParentRole, studentID int64) (int64, error) {
	return 0, nil
}

func boolPtr(v bool) *bool { return &v }

func TestStudentHandlerGetRendersBooleans(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &studentRepoMock{detail: &models.StudentDetail{
		Student: models.Student{
			ID: 5, FirstName: "Ayse", LastName: "Demir",
			IsActive: true, ParentsTogether: true, IsBilsem: false,
		},
		MotherIsGuardian: boolPtr(true),
	}}
	svc := service.NewStudentService(repo, nil, nil, nil)
	handler := NewStudentHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/students/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Data["is_active"])
	assert.Equal(t, true, envelope.Data["parents_together"])
	assert.Equal(t, false, envelope.Data["is_bilsem"])
	assert.Equal(t, true, envelope.Data["mother_is_guardian"])
	_, hasFather := envelope.Data["father_name"]
	assert.False(t, hasFather)
}

func TestStudentHandlerGetUnknownID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewStudentService(&studentRepoMock{}, nil, nil, nil)
	handler := NewStudentHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/students/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	handler.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentHandlerGetBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewStudentService(&studentRepoMock{}, nil, nil, nil)
	handler := NewStudentHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/students/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Get(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
