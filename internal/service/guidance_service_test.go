package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulpanel/rehber-api/internal/models"
	appErrors "github.com/okulpanel/rehber-api/pkg/errors"
)

type mockPlanRepo struct {
	plans         map[int64]*models.GuidancePlan
	nextID        int64
	orphanedFiles []string
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[int64]*models.GuidancePlan), nextID: 1}
}

func (m *mockPlanRepo) List(ctx context.Context, filter models.GuidancePlanFilter) ([]models.GuidancePlan, error) {
	var out []models.GuidancePlan
	for _, p := range m.plans {
		if p.ClassID == filter.ClassID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPlanRepo) Create(ctx context.Context, plan *models.GuidancePlan) error {
	plan.ID = m.nextID
	m.nextID++
	cp := *plan
	m.plans[plan.ID] = &cp
	return nil
}

func (m *mockPlanRepo) Update(ctx context.Context, plan *models.GuidancePlan) (int64, error) {
	if _, ok := m.plans[plan.ID]; !ok {
		return 0, nil
	}
	cp := *plan
	m.plans[plan.ID] = &cp
	return 1, nil
}

func (m *mockPlanRepo) Delete(ctx context.Context, id int64) (int64, []string, error) {
	if _, ok := m.plans[id]; !ok {
		return 0, nil, nil
	}
	delete(m.plans, id)
	return 1, m.orphanedFiles, nil
}

type mockEventRepo struct {
	events map[int64]*models.GuidanceEvent
	nextID int64
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[int64]*models.GuidanceEvent), nextID: 1}
}

func (m *mockEventRepo) ListByPlan(ctx context.Context, planID int64) ([]models.GuidanceEvent, error) {
	var out []models.GuidanceEvent
	for _, e := range m.events {
		if e.PlanID == planID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.GuidanceEvent) error {
	event.ID = m.nextID
	m.nextID++
	cp := *event
	m.events[event.ID] = &cp
	return nil
}

func (m *mockEventRepo) Update(ctx context.Context, event *models.GuidanceEvent, newFile *string) (int64, *string, error) {
	existing, ok := m.events[event.ID]
	if !ok {
		return 0, nil, nil
	}
	var previous *string
	if newFile != nil {
		previous = existing.FilePath
		existing.FilePath = newFile
	}
	existing.Date = event.Date
	existing.EventName = event.EventName
	existing.Description = event.Description
	event.FilePath = existing.FilePath
	return 1, previous, nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64) (int64, *string, error) {
	existing, ok := m.events[id]
	if !ok {
		return 0, nil, nil
	}
	delete(m.events, id)
	return 1, existing.FilePath, nil
}

func validEventRequest(planID int64) GuidanceEventRequest {
	return GuidanceEventRequest{PlanID: planID, Date: "2025-10-01", EventName: "Group session"}
}

func TestGuidanceServiceCreateEventStoresAttachment(t *testing.T) {
	events := newMockEventRepo()
	files := &mockFileStore{}
	svc := NewGuidanceService(newMockPlanRepo(), events, files, nil, nil)

	event, err := svc.CreateEvent(context.Background(), validEventRequest(1),
		&UploadedFile{Name: "worksheet.pdf", Reader: strings.NewReader("pdf")})
	require.NoError(t, err)
	require.NotNil(t, event.FilePath)
	assert.Equal(t, "stored-worksheet.pdf", *event.FilePath)
}

func TestGuidanceServiceCreateEventRequiresPlan(t *testing.T) {
	svc := NewGuidanceService(newMockPlanRepo(), newMockEventRepo(), &mockFileStore{}, nil, nil)

	_, err := svc.CreateEvent(context.Background(), validEventRequest(0), nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGuidanceServiceUpdateEventReplacesAttachment(t *testing.T) {
	events := newMockEventRepo()
	files := &mockFileStore{}
	svc := NewGuidanceService(newMockPlanRepo(), events, files, nil, nil)

	event, err := svc.CreateEvent(context.Background(), validEventRequest(1),
		&UploadedFile{Name: "old.pdf", Reader: strings.NewReader("a")})
	require.NoError(t, err)

	updated, err := svc.UpdateEvent(context.Background(), event.ID, validEventRequest(1),
		&UploadedFile{Name: "new.pdf", Reader: strings.NewReader("b")})
	require.NoError(t, err)
	require.NotNil(t, updated.FilePath)
	assert.Equal(t, "stored-new.pdf", *updated.FilePath)
	assert.Equal(t, []string{"stored-old.pdf"}, files.deleted)
}

func TestGuidanceServiceUpdateEventKeepsAttachmentWithoutUpload(t *testing.T) {
	events := newMockEventRepo()
	files := &mockFileStore{}
	svc := NewGuidanceService(newMockPlanRepo(), events, files, nil, nil)

	event, err := svc.CreateEvent(context.Background(), validEventRequest(1),
		&UploadedFile{Name: "keep.pdf", Reader: strings.NewReader("a")})
	require.NoError(t, err)

	updated, err := svc.UpdateEvent(context.Background(), event.ID, validEventRequest(1), nil)
	require.NoError(t, err)
	require.NotNil(t, updated.FilePath)
	assert.Equal(t, "stored-keep.pdf", *updated.FilePath)
	assert.Empty(t, files.deleted)
}

func TestGuidanceServiceUpdateEventMissingCleansUpUpload(t *testing.T) {
	files := &mockFileStore{}
	svc := NewGuidanceService(newMockPlanRepo(), newMockEventRepo(), files, nil, nil)

	_, err := svc.UpdateEvent(context.Background(), 404, validEventRequest(1),
		&UploadedFile{Name: "lost.pdf", Reader: strings.NewReader("a")})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Equal(t, []string{"stored-lost.pdf"}, files.deleted)
}

func TestGuidanceServiceDeleteEventRemovesAttachment(t *testing.T) {
	events := newMockEventRepo()
	files := &mockFileStore{}
	svc := NewGuidanceService(newMockPlanRepo(), events, files, nil, nil)

	event, err := svc.CreateEvent(context.Background(), validEventRequest(1),
		&UploadedFile{Name: "gone.pdf", Reader: strings.NewReader("a")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(context.Background(), event.ID))
	assert.Equal(t, []string{"stored-gone.pdf"}, files.deleted)
	assert.Empty(t, events.events)
}

func TestGuidanceServiceDeletePlanCascades(t *testing.T) {
	plans := newMockPlanRepo()
	files := &mockFileStore{}
	svc := NewGuidanceService(plans, newMockEventRepo(), files, nil, nil)

	plan, err := svc.CreatePlan(context.Background(), CreateGuidancePlanRequest{
		ClassID: 3, EducationYearID: 1, Date: "2025-09-15", Topic: "Adjustment",
	})
	require.NoError(t, err)
	plans.orphanedFiles = []string{"a.pdf", "b.docx"}

	require.NoError(t, svc.DeletePlan(context.Background(), plan.ID))
	assert.Equal(t, []string{"a.pdf", "b.docx"}, files.deleted)
}

func TestGuidanceServiceDeletePlanUnknownID(t *testing.T) {
	svc := NewGuidanceService(newMockPlanRepo(), newMockEventRepo(), &mockFileStore{}, nil, nil)

	err := svc.DeletePlan(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
