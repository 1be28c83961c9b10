package alert

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforma/qualitrack/internal/application/alert/dto"
	"github.com/polyforma/qualitrack/internal/application/alert/usecases"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/testutil"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
)

type mockListUC struct {
	got    usecases.ListAlertsQuery
	result *usecases.ListAlertsResult
	err    error
}

func (m *mockListUC) Execute(_ context.Context, query usecases.ListAlertsQuery) (*usecases.ListAlertsResult, error) {
	m.got = query
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.AlertDTO
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, _ usecases.GetAlertQuery) (*dto.AlertDTO, error) {
	return m.result, m.err
}

type mockResolveUC struct {
	got    usecases.ResolveAlertCommand
	result *dto.AlertDTO
	err    error
}

func (m *mockResolveUC) Execute(_ context.Context, cmd usecases.ResolveAlertCommand) (*dto.AlertDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDismissUC struct {
	got    usecases.DismissAlertCommand
	result *dto.AlertDTO
	err    error
}

func (m *mockDismissUC) Execute(_ context.Context, cmd usecases.DismissAlertCommand) (*dto.AlertDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type testDeps struct {
	list    *mockListUC
	get     *mockGetUC
	resolve *mockResolveUC
	dismiss *mockDismissUC
}

func newTestHandler() (*Handler, testDeps) {
	deps := testDeps{
		list:    &mockListUC{},
		get:     &mockGetUC{},
		resolve: &mockResolveUC{},
		dismiss: &mockDismissUC{},
	}
	return NewHandler(deps.list, deps.get, deps.resolve, deps.dismiss, testutil.NewMockLogger()), deps
}

func TestHandler_Resolve_Success(t *testing.T) {
	h, deps := newTestHandler()
	deps.resolve.result = &dto.AlertDTO{ID: 4, Status: "resuelta"}

	c, w := testutil.NewTestContext(http.MethodPost, "/alerts/4/resolve", map[string]any{"notes": "corrected"})
	testutil.SetURLParam(c, "id", "4")
	testutil.SetAuthContext(c, 2, auth.RoleSupervisor)

	h.Resolve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), deps.resolve.got.AlertID)
	assert.Equal(t, "corrected", deps.resolve.got.Notes)
	assert.Equal(t, auth.Actor{UserID: 2, Role: auth.RoleSupervisor}, deps.resolve.got.Actor)
}

func TestHandler_Resolve_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty notes", errors.NewValidationError("resolution notes are required"), http.StatusBadRequest},
		{"missing", errors.NewNotFoundError("alert not found"), http.StatusNotFound},
		{"already closed", errors.NewConflictError("alert is not active"), http.StatusConflict},
		{"wrong role", errors.NewForbiddenError("role not allowed for this operation"), http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler()
			deps.resolve.err = tt.err

			c, w := testutil.NewTestContext(http.MethodPost, "/alerts/4/resolve", map[string]any{"notes": ""})
			testutil.SetURLParam(c, "id", "4")
			testutil.SetAuthContext(c, 2, auth.RoleSupervisor)

			h.Resolve(c)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHandler_Dismiss(t *testing.T) {
	h, deps := newTestHandler()
	deps.dismiss.result = &dto.AlertDTO{ID: 4, Status: "descartada"}

	c, w := testutil.NewTestContext(http.MethodPost, "/alerts/4/dismiss", nil)
	testutil.SetURLParam(c, "id", "4")
	testutil.SetAuthContext(c, 1, auth.RoleAdministrator)

	h.Dismiss(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), deps.dismiss.got.AlertID)
}

func TestHandler_Dismiss_InvalidID(t *testing.T) {
	h, _ := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodPost, "/alerts/abc/dismiss", nil)
	testutil.SetURLParam(c, "id", "abc")

	h.Dismiss(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_List_Filters(t *testing.T) {
	h, deps := newTestHandler()
	deps.list.result = &usecases.ListAlertsResult{Alerts: []*dto.AlertDTO{{ID: 1}}, TotalCount: 1, Page: 1, PageSize: 20}

	c, w := testutil.NewTestContext(http.MethodGet, "/alerts", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "activa", "product_id": "3", "created_from": "2026-01-01"})
	testutil.SetAuthContext(c, 5, auth.RoleManagement)

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "activa", *deps.list.got.Status)
	assert.Equal(t, uint(3), *deps.list.got.ProductID)
	require.NotNil(t, deps.list.got.CreatedFrom)
	assert.Nil(t, deps.list.got.CreatedTo)
}

func TestHandler_Get(t *testing.T) {
	h, deps := newTestHandler()
	deps.get.result = &dto.AlertDTO{ID: 8, Threshold: "5.00", ActualValue: "6.00"}

	c, w := testutil.NewTestContext(http.MethodGet, "/alerts/8", nil)
	testutil.SetURLParam(c, "id", "8")
	testutil.SetAuthContext(c, 5, auth.RoleManagement)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actual_value":"6.00"`)
}
