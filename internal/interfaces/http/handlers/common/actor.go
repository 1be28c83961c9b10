// Package common provides shared HTTP handler utilities.
package common

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/constants"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/utils"
)

// DateLayout is the wire format of calendar dates in requests.
const DateLayout = "2006-01-02"

// ActorFrom returns the caller the auth middleware stored on the context.
// Anonymous requests yield the zero Actor, which every use case rejects.
func ActorFrom(c *gin.Context) auth.Actor {
	var actor auth.Actor
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		actor.UserID, _ = v.(uint)
	}
	if v, ok := c.Get(constants.ContextKeyUserRole); ok {
		actor.Role, _ = v.(string)
	}
	return actor
}

// SetActor stores the caller on the context.
func SetActor(c *gin.Context, actor auth.Actor) {
	c.Set(constants.ContextKeyUserID, actor.UserID)
	c.Set(constants.ContextKeyUserRole, actor.Role)
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	return utils.ParseUintParam(c.Param(name), name)
}

func OptionalStringQuery(c *gin.Context, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

func OptionalBoolQuery(c *gin.Context, key string) (*bool, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+key, v)
	}
	return &b, nil
}

// OptionalDateQuery parses a YYYY-MM-DD query value as a UTC date.
func OptionalDateQuery(c *gin.Context, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, v, time.UTC)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+key+", expected YYYY-MM-DD", v)
	}
	return &t, nil
}

// ListParams carries the paging and sorting every list endpoint accepts.
type ListParams struct {
	utils.Pagination
	SortBy    string
	SortOrder string
}

func ParseListParams(c *gin.Context) ListParams {
	return ListParams{
		Pagination: utils.ParsePagination(c),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.DefaultQuery("sort_order", "desc"),
	}
}
