package usecases

import (
	"context"
	stderrors "errors"

	"github.com/polyforma/qualitrack/internal/application/nonconformity/dto"
	"github.com/polyforma/qualitrack/internal/domain/nonconformity"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type GetNonConformityQuery struct {
	Actor           auth.Actor
	NonConformityID uint
}

type GetNonConformityUseCase struct {
	ncRepo nonconformity.Repository
	logger logger.Interface
}

func NewGetNonConformityUseCase(ncRepo nonconformity.Repository, logger logger.Interface) *GetNonConformityUseCase {
	return &GetNonConformityUseCase{ncRepo: ncRepo, logger: logger}
}

func (uc *GetNonConformityUseCase) Execute(ctx context.Context, query GetNonConformityQuery) (*dto.NonConformityDTO, error) {
	if err := auth.Require(query.Actor); err != nil {
		return nil, err
	}
	nc, err := loadNonConformity(ctx, uc.ncRepo, uc.logger, query.NonConformityID)
	if err != nil {
		return nil, err
	}
	return dto.ToNonConformityDTO(nc), nil
}

func loadNonConformity(ctx context.Context, repo nonconformity.Repository, log logger.Interface, ncID uint) (*nonconformity.NonConformity, error) {
	if ncID == 0 {
		return nil, errors.NewValidationError("non-conformity ID is required")
	}
	nc, err := repo.GetByID(ctx, ncID)
	if err != nil {
		if stderrors.Is(err, nonconformity.ErrNonConformityNotFound) {
			return nil, errors.NewNotFoundError("non-conformity not found")
		}
		log.Errorw("failed to get non-conformity", "non_conformity_id", ncID, "error", err)
		return nil, errors.NewInternalError("failed to get non-conformity")
	}
	return nc, nil
}
