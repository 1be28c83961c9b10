package usecases

import (
	"context"

	"github.com/polyforma/qualitrack/internal/application/production/dto"
)

type CreateProductionRecordExecutor interface {
	Execute(ctx context.Context, cmd CreateProductionRecordCommand) (*dto.ProductionRecordDTO, error)
}

type GetProductionRecordExecutor interface {
	Execute(ctx context.Context, query GetProductionRecordQuery) (*dto.ProductionRecordDTO, error)
}

type ListProductionRecordsExecutor interface {
	Execute(ctx context.Context, query ListProductionRecordsQuery) (*ListProductionRecordsResult, error)
}
