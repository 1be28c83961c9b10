package usecases

import (
	"context"

	"github.com/polyforma/qualitrack/internal/application/alert/dto"
)

type ListAlertsExecutor interface {
	Execute(ctx context.Context, query ListAlertsQuery) (*ListAlertsResult, error)
}

type GetAlertExecutor interface {
	Execute(ctx context.Context, query GetAlertQuery) (*dto.AlertDTO, error)
}

type ResolveAlertExecutor interface {
	Execute(ctx context.Context, cmd ResolveAlertCommand) (*dto.AlertDTO, error)
}

type DismissAlertExecutor interface {
	Execute(ctx context.Context, cmd DismissAlertCommand) (*dto.AlertDTO, error)
}
