package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

func TestListAlerts_BuildsFilter(t *testing.T) {
	var got alert.Filter
	repo := &mockAlertRepository{
		ListFunc: func(_ context.Context, f alert.Filter) ([]*alert.Alert, int64, error) {
			got = f
			return []*alert.Alert{storedAlert(1, alert.StatusActive)}, 1, nil
		},
	}
	status := "activa"
	productID := uint(3)

	result, err := NewListAlertsUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), ListAlertsQuery{
		Actor:     auth.Actor{UserID: 1, Role: auth.RoleManagement},
		Status:    &status,
		ProductID: &productID,
		PageSize:  500,
	})

	require.NoError(t, err)
	assert.Len(t, result.Alerts, 1)
	assert.Equal(t, "6.00", result.Alerts[0].ActualValue)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 100, result.PageSize)
	require.NotNil(t, got.Status)
	assert.Equal(t, alert.StatusActive, *got.Status)
	assert.Equal(t, uint(3), *got.ProductID)
}

func TestListAlerts_InvalidStatus(t *testing.T) {
	status := "abierta"
	_, err := NewListAlertsUseCase(&mockAlertRepository{}, logger.NewNopLogger()).Execute(context.Background(), ListAlertsQuery{
		Actor: auth.Actor{UserID: 1, Role: auth.RoleManagement}, Status: &status,
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestListAlerts_InvertedRange(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)
	_, err := NewListAlertsUseCase(&mockAlertRepository{}, logger.NewNopLogger()).Execute(context.Background(), ListAlertsQuery{
		Actor: auth.Actor{UserID: 1, Role: auth.RoleManagement}, CreatedFrom: &from, CreatedTo: &to,
	})

	assert.True(t, errors.IsValidationError(err))
}

func TestGetAlert(t *testing.T) {
	repo := &mockAlertRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*alert.Alert, error) {
			return storedAlert(id, alert.StatusActive), nil
		},
	}
	uc := NewGetAlertUseCase(repo, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), GetAlertQuery{Actor: supervisor, AlertID: 5})
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)

	_, err = NewGetAlertUseCase(&mockAlertRepository{}, logger.NewNopLogger()).Execute(context.Background(), GetAlertQuery{Actor: supervisor, AlertID: 5})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), GetAlertQuery{AlertID: 5})
	assert.Error(t, err)
}
