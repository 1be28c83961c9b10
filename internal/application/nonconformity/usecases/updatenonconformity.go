package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/polyforma/qualitrack/internal/application/nonconformity/dto"
	"github.com/polyforma/qualitrack/internal/domain/nonconformity"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/biztime"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type ResolveNonConformityCommand struct {
	Actor            auth.Actor
	NonConformityID  uint
	CorrectiveAction string
}

type SetNonConformityStatusCommand struct {
	Actor           auth.Actor
	NonConformityID uint
	Status          string
}

type ResolveNonConformityUseCase struct {
	ncRepo nonconformity.Repository
	logger logger.Interface
}

func NewResolveNonConformityUseCase(ncRepo nonconformity.Repository, logger logger.Interface) *ResolveNonConformityUseCase {
	return &ResolveNonConformityUseCase{ncRepo: ncRepo, logger: logger}
}

// Execute resolves the item whatever its current status, including cerrada.
func (uc *ResolveNonConformityUseCase) Execute(ctx context.Context, cmd ResolveNonConformityCommand) (*dto.NonConformityDTO, error) {
	uc.logger.Infow("executing resolve non-conformity use case", "non_conformity_id", cmd.NonConformityID, "user_id", cmd.Actor.UserID)

	if err := auth.Require(cmd.Actor, auth.QualityEditors...); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cmd.CorrectiveAction) == "" {
		return nil, errors.NewValidationError("corrective action is required")
	}

	nc, err := loadNonConformity(ctx, uc.ncRepo, uc.logger, cmd.NonConformityID)
	if err != nil {
		return nil, err
	}
	previous := nc.Status()

	if err := nc.Resolve(cmd.Actor.UserID, cmd.CorrectiveAction, biztime.NowUTC()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := saveNonConformity(ctx, uc.ncRepo, uc.logger, nc); err != nil {
		return nil, err
	}

	uc.logger.Infow("non-conformity resolved", "non_conformity_id", nc.ID(), "previous_status", previous)
	return dto.ToNonConformityDTO(nc), nil
}

type SetNonConformityStatusUseCase struct {
	ncRepo nonconformity.Repository
	logger logger.Interface
}

func NewSetNonConformityStatusUseCase(ncRepo nonconformity.Repository, logger logger.Interface) *SetNonConformityStatusUseCase {
	return &SetNonConformityStatusUseCase{ncRepo: ncRepo, logger: logger}
}

func (uc *SetNonConformityStatusUseCase) Execute(ctx context.Context, cmd SetNonConformityStatusCommand) (*dto.NonConformityDTO, error) {
	uc.logger.Infow("executing set non-conformity status use case",
		"non_conformity_id", cmd.NonConformityID,
		"status", cmd.Status,
		"user_id", cmd.Actor.UserID,
	)

	if err := auth.Require(cmd.Actor, auth.QualityEditors...); err != nil {
		return nil, err
	}
	status, err := nonconformity.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	nc, err := loadNonConformity(ctx, uc.ncRepo, uc.logger, cmd.NonConformityID)
	if err != nil {
		return nil, err
	}
	previous := nc.Status()

	if err := nc.SetStatus(status, biztime.NowUTC()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := saveNonConformity(ctx, uc.ncRepo, uc.logger, nc); err != nil {
		return nil, err
	}

	uc.logger.Infow("non-conformity status changed", "non_conformity_id", nc.ID(), "from", previous, "to", status)
	return dto.ToNonConformityDTO(nc), nil
}

func saveNonConformity(ctx context.Context, repo nonconformity.Repository, log logger.Interface, nc *nonconformity.NonConformity) error {
	if err := repo.Update(ctx, nc); err != nil {
		if stderrors.Is(err, nonconformity.ErrNonConformityNotFound) {
			return errors.NewNotFoundError("non-conformity not found")
		}
		log.Errorw("failed to update non-conformity", "non_conformity_id", nc.ID(), "error", err)
		return errors.NewInternalError("failed to update non-conformity")
	}
	return nil
}
