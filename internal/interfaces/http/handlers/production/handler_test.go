package production

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforma/qualitrack/internal/application/production/dto"
	"github.com/polyforma/qualitrack/internal/application/production/usecases"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/testutil"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
)

type mockCreateUC struct {
	got    usecases.CreateProductionRecordCommand
	result *dto.ProductionRecordDTO
	err    error
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateProductionRecordCommand) (*dto.ProductionRecordDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.ProductionRecordDTO
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, _ usecases.GetProductionRecordQuery) (*dto.ProductionRecordDTO, error) {
	return m.result, m.err
}

type mockListUC struct {
	got    usecases.ListProductionRecordsQuery
	result *usecases.ListProductionRecordsResult
	err    error
}

func (m *mockListUC) Execute(_ context.Context, query usecases.ListProductionRecordsQuery) (*usecases.ListProductionRecordsResult, error) {
	m.got = query
	return m.result, m.err
}

func TestHandler_Create_Success(t *testing.T) {
	createUC := &mockCreateUC{result: &dto.ProductionRecordDTO{ID: 9, LotNumber: "L-001"}}
	h := NewHandler(createUC, &mockGetUC{}, &mockListUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/production-records", map[string]any{
		"product_id":      1,
		"lot_number":      "L-001",
		"production_date": "2026-01-14",
		"shift":           "morning",
		"total_produced":  1000,
		"total_approved":  960,
		"total_rejected":  40,
	})
	testutil.SetAuthContext(c, 3, auth.RoleQualityAssistant)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), createUC.got.Actor.UserID)
	assert.Equal(t, time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), createUC.got.ProductionDate)
	assert.Equal(t, 960, createUC.got.TotalApproved)
}

func TestHandler_Create_BindingFailures(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing lot", map[string]any{"product_id": 1, "production_date": "2026-01-14", "shift": "morning", "total_produced": 10}},
		{"bad shift", map[string]any{"product_id": 1, "lot_number": "L", "production_date": "2026-01-14", "shift": "evening", "total_produced": 10}},
		{"bad date", map[string]any{"product_id": 1, "lot_number": "L", "production_date": "14/01/2026", "shift": "night", "total_produced": 10}},
		{"zero produced", map[string]any{"product_id": 1, "lot_number": "L", "production_date": "2026-01-14", "shift": "night", "total_produced": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			createUC := &mockCreateUC{}
			h := NewHandler(createUC, &mockGetUC{}, &mockListUC{}, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodPost, "/production-records", tt.body)
			testutil.SetAuthContext(c, 3, auth.RoleQualityAssistant)

			h.Create(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, "validation_error", resp.Error.Type)
		})
	}
}

func TestHandler_Create_InvariantViolation(t *testing.T) {
	createUC := &mockCreateUC{err: errors.NewValidationError("sum of approved and rejected exceeds total produced")}
	h := NewHandler(createUC, &mockGetUC{}, &mockListUC{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodPost, "/production-records", map[string]any{
		"product_id": 1, "lot_number": "L", "production_date": "2026-01-14", "shift": "night",
		"total_produced": 10, "total_approved": 8, "total_rejected": 5,
	})
	testutil.SetAuthContext(c, 3, auth.RoleQualityAssistant)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "sum of approved and rejected exceeds total produced", resp.Error.Message)
}

func TestHandler_Get_NotFound(t *testing.T) {
	h := NewHandler(&mockCreateUC{}, &mockGetUC{err: errors.NewNotFoundError("production record not found")}, &mockListUC{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/production-records/5", nil)
	testutil.SetURLParam(c, "id", "5")
	testutil.SetAuthContext(c, 3, auth.RoleManagement)

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_List_PassesFilters(t *testing.T) {
	listUC := &mockListUC{result: &usecases.ListProductionRecordsResult{
		Records:    []*dto.ProductionRecordDTO{{ID: 1}, {ID: 2}},
		TotalCount: 25,
		Page:       2,
		PageSize:   10,
	}}
	h := NewHandler(&mockCreateUC{}, &mockGetUC{}, listUC, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/production-records", nil)
	testutil.SetQueryParams(c, map[string]string{
		"product_id":     "4",
		"lot_number":     "2026",
		"date_from":      "2026-01-01",
		"shift":          "night",
		"has_inspection": "false",
		"page":           "2",
		"page_size":      "10",
	})
	testutil.SetAuthContext(c, 3, auth.RoleManagement)

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, listUC.got.ProductID)
	assert.Equal(t, uint(4), *listUC.got.ProductID)
	assert.Equal(t, "2026", listUC.got.LotNumber)
	assert.Equal(t, "night", *listUC.got.Shift)
	require.NotNil(t, listUC.got.HasInspection)
	assert.False(t, *listUC.got.HasInspection)
	assert.Nil(t, listUC.got.DateTo)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(25), data.Total)
	assert.Equal(t, 3, data.TotalPages)
}

func TestHandler_List_BadDate(t *testing.T) {
	h := NewHandler(&mockCreateUC{}, &mockGetUC{}, &mockListUC{}, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/production-records", nil)
	testutil.SetQueryParams(c, map[string]string{"date_to": "yesterday"})

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
