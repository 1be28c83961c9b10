package certificate

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforma/qualitrack/internal/application/certificate/dto"
	"github.com/polyforma/qualitrack/internal/application/certificate/usecases"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/testutil"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
)

type mockCreateUC struct {
	got    usecases.CreateCertificateCommand
	result *dto.CertificateDTO
	err    error
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateCertificateCommand) (*dto.CertificateDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockApproveUC struct {
	got    usecases.ApproveCertificateCommand
	result *dto.ApproveResultDTO
	err    error
}

func (m *mockApproveUC) Execute(_ context.Context, cmd usecases.ApproveCertificateCommand) (*dto.ApproveResultDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockRejectUC struct {
	got    usecases.RejectCertificateCommand
	result *dto.CertificateDTO
	err    error
}

func (m *mockRejectUC) Execute(_ context.Context, cmd usecases.RejectCertificateCommand) (*dto.CertificateDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.CertificateDTO
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, _ usecases.GetCertificateQuery) (*dto.CertificateDTO, error) {
	return m.result, m.err
}

type mockListUC struct {
	got    usecases.ListCertificatesQuery
	result *usecases.ListCertificatesResult
	err    error
}

func (m *mockListUC) Execute(_ context.Context, query usecases.ListCertificatesQuery) (*usecases.ListCertificatesResult, error) {
	m.got = query
	return m.result, m.err
}

type mockDownloadUC struct {
	result *usecases.DownloadCertificateResult
	err    error
}

func (m *mockDownloadUC) Execute(_ context.Context, _ usecases.DownloadCertificateQuery) (*usecases.DownloadCertificateResult, error) {
	return m.result, m.err
}

type testDeps struct {
	create   *mockCreateUC
	approve  *mockApproveUC
	reject   *mockRejectUC
	get      *mockGetUC
	list     *mockListUC
	download *mockDownloadUC
}

func newTestHandler() (*Handler, testDeps) {
	deps := testDeps{
		create:   &mockCreateUC{},
		approve:  &mockApproveUC{},
		reject:   &mockRejectUC{},
		get:      &mockGetUC{},
		list:     &mockListUC{},
		download: &mockDownloadUC{},
	}
	h := NewHandler(deps.create, deps.approve, deps.reject, deps.get, deps.list, deps.download, testutil.NewMockLogger())
	return h, deps
}

type trackingReader struct {
	io.Reader
	closed bool
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

func TestHandler_Create(t *testing.T) {
	h, deps := newTestHandler()
	deps.create.result = &dto.CertificateDTO{ID: 1, Code: "CERT-20260115140000-AB2C", Status: "pendiente"}

	qcID := uint(20)
	c, w := testutil.NewTestContext(http.MethodPost, "/certificates", map[string]any{
		"product_id":           1,
		"production_record_id": 5,
		"quality_control_id":   qcID,
	})
	testutil.SetAuthContext(c, 3, auth.RoleQualityAssistant)

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, deps.create.got.QualityControlID)
	assert.Equal(t, qcID, *deps.create.got.QualityControlID)
	assert.Equal(t, uint(5), deps.create.got.ProductionRecordID)
}

func TestHandler_Create_LotWithoutInspection(t *testing.T) {
	h, deps := newTestHandler()
	deps.create.err = errors.NewValidationError("lot has no inspection")

	c, w := testutil.NewTestContext(http.MethodPost, "/certificates", map[string]any{"product_id": 1, "production_record_id": 5})
	testutil.SetAuthContext(c, 3, auth.RoleQualityAssistant)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "lot has no inspection", resp.Error.Message)
}

func TestHandler_Approve_AlreadyDecided(t *testing.T) {
	h, deps := newTestHandler()
	deps.approve.err = errors.NewConflictError("certificate is not pending")

	c, w := testutil.NewTestContext(http.MethodPost, "/certificates/7/approve", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetAuthContext(c, 2, auth.RoleSupervisor)

	h.Approve(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, uint(7), deps.approve.got.CertificateID)
}

func TestHandler_Reject(t *testing.T) {
	h, deps := newTestHandler()
	deps.reject.result = &dto.CertificateDTO{ID: 7, Status: "rechazado", RejectionReason: "medidas fuera de tolerancia"}

	c, w := testutil.NewTestContext(http.MethodPost, "/certificates/7/reject", map[string]any{"reason": "medidas fuera de tolerancia"})
	testutil.SetURLParam(c, "id", "7")
	testutil.SetAuthContext(c, 2, auth.RoleSupervisor)

	h.Reject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "medidas fuera de tolerancia", deps.reject.got.Reason)
}

func TestHandler_Download_StreamsDocument(t *testing.T) {
	h, deps := newTestHandler()
	body := &trackingReader{Reader: strings.NewReader("%PDF-1.3 test")}
	deps.download.result = &usecases.DownloadCertificateResult{
		FileName:    "CERT-20260115140000-AB2C.pdf",
		ContentType: "application/pdf",
		Content:     body,
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/certificates/7/download", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetAuthContext(c, 3, auth.RoleManagement)

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "CERT-20260115140000-AB2C.pdf")
	assert.Equal(t, "%PDF-1.3 test", w.Body.String())
	assert.True(t, body.closed)
}

func TestHandler_Download_NotApproved(t *testing.T) {
	h, deps := newTestHandler()
	deps.download.err = errors.NewValidationError("certificate is not approved")

	c, w := testutil.NewTestContext(http.MethodGet, "/certificates/7/download", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetAuthContext(c, 3, auth.RoleManagement)

	h.Download(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_List_Filters(t *testing.T) {
	h, deps := newTestHandler()
	deps.list.result = &usecases.ListCertificatesResult{Page: 1, PageSize: 20}

	c, w := testutil.NewTestContext(http.MethodGet, "/certificates", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "pendiente", "requested_by": "3"})
	testutil.SetAuthContext(c, 2, auth.RoleSupervisor)

	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pendiente", *deps.list.got.Status)
	assert.Equal(t, uint(3), *deps.list.got.RequestedBy)
	assert.Nil(t, deps.list.got.ProductID)
}
