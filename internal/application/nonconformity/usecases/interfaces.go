package usecases

import (
	"context"

	"github.com/polyforma/qualitrack/internal/application/nonconformity/dto"
)

type CreateNonConformityExecutor interface {
	Execute(ctx context.Context, cmd CreateNonConformityCommand) (*dto.NonConformityDTO, error)
}

type GetNonConformityExecutor interface {
	Execute(ctx context.Context, query GetNonConformityQuery) (*dto.NonConformityDTO, error)
}

type ListNonConformitiesExecutor interface {
	Execute(ctx context.Context, query ListNonConformitiesQuery) (*ListNonConformitiesResult, error)
}

type ResolveNonConformityExecutor interface {
	Execute(ctx context.Context, cmd ResolveNonConformityCommand) (*dto.NonConformityDTO, error)
}

type SetNonConformityStatusExecutor interface {
	Execute(ctx context.Context, cmd SetNonConformityStatusCommand) (*dto.NonConformityDTO, error)
}
