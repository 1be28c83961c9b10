package common

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/testutil"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
)

func TestActorFrom(t *testing.T) {
	c, _ := testutil.NewTestContext(http.MethodGet, "/", nil)
	assert.False(t, ActorFrom(c).IsAuthenticated())

	SetActor(c, auth.Actor{UserID: 4, Role: auth.RoleSupervisor})
	assert.Equal(t, auth.Actor{UserID: 4, Role: auth.RoleSupervisor}, ActorFrom(c))
}

func TestQueryParsers(t *testing.T) {
	c, _ := testutil.NewTestContext(http.MethodGet, "/", nil)
	testutil.SetQueryParams(c, map[string]string{
		"from":           "2026-01-15",
		"bad_date":       "15/01/2026",
		"has_inspection": "true",
		"approved":       "maybe",
		"status":         "  activa ",
		"page":           "3",
		"page_size":      "500",
	})

	from, err := OptionalDateQuery(c, "from")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *from)

	_, err = OptionalDateQuery(c, "bad_date")
	assert.True(t, errors.IsValidationError(err))

	missing, err := OptionalDateQuery(c, "to")
	require.NoError(t, err)
	assert.Nil(t, missing)

	has, err := OptionalBoolQuery(c, "has_inspection")
	require.NoError(t, err)
	assert.True(t, *has)

	_, err = OptionalBoolQuery(c, "approved")
	assert.True(t, errors.IsValidationError(err))

	assert.Equal(t, "activa", *OptionalStringQuery(c, "status"))
	assert.Nil(t, OptionalStringQuery(c, "severity"))

	params := ParseListParams(c)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 100, params.PageSize)
	assert.Equal(t, "desc", params.SortOrder)
}

func TestParseIDParam(t *testing.T) {
	c, _ := testutil.NewTestContext(http.MethodGet, "/", nil)
	testutil.SetURLParam(c, "id", "12")
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c, _ = testutil.NewTestContext(http.MethodGet, "/", nil)
	testutil.SetURLParam(c, "id", "0")
	_, err = ParseIDParam(c, "id")
	assert.True(t, errors.IsValidationError(err))
}
