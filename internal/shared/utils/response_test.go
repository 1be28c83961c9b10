package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforma/qualitrack/internal/shared/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestErrorResponseWithError_AppError(t *testing.T) {
	c, w := newContext()

	ErrorResponseWithError(c, fmt.Errorf("wrap: %w", errors.NewConflictError("certificate is not pending")))

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "conflict", resp.Error.Type)
	assert.Equal(t, "certificate is not pending", resp.Error.Message)
}

func TestErrorResponseWithError_HidesInternalDetails(t *testing.T) {
	c, w := newContext()

	ErrorResponseWithError(c, fmt.Errorf("dial tcp 10.0.0.5:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestListSuccessResponse_TotalPages(t *testing.T) {
	c, w := newContext()

	ListSuccessResponse(c, []int{1, 2}, 41, 1, 20)

	var resp struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.TotalPages)
	assert.Equal(t, int64(41), resp.Data.Total)
}
