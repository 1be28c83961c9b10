package usecases

import (
	"context"

	"github.com/polyforma/qualitrack/internal/application/quality/dto"
)

type SubmitQualityControlExecutor interface {
	Execute(ctx context.Context, cmd SubmitQualityControlCommand) (*dto.SubmitResultDTO, error)
}

type GetQualityControlExecutor interface {
	Execute(ctx context.Context, query GetQualityControlQuery) (*dto.QualityControlDTO, error)
}

type ListQualityControlsExecutor interface {
	Execute(ctx context.Context, query ListQualityControlsQuery) (*ListQualityControlsResult, error)
}
