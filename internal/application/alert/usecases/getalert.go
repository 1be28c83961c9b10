package usecases

import (
	"context"
	stderrors "errors"

	"github.com/polyforma/qualitrack/internal/application/alert/dto"
	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type GetAlertQuery struct {
	Actor   auth.Actor
	AlertID uint
}

type GetAlertUseCase struct {
	alertRepo alert.Repository
	logger    logger.Interface
}

func NewGetAlertUseCase(alertRepo alert.Repository, logger logger.Interface) *GetAlertUseCase {
	return &GetAlertUseCase{alertRepo: alertRepo, logger: logger}
}

func (uc *GetAlertUseCase) Execute(ctx context.Context, query GetAlertQuery) (*dto.AlertDTO, error) {
	if err := auth.Require(query.Actor); err != nil {
		return nil, err
	}
	if query.AlertID == 0 {
		return nil, errors.NewValidationError("alert ID is required")
	}

	a, err := loadAlert(ctx, uc.alertRepo, uc.logger, query.AlertID)
	if err != nil {
		return nil, err
	}
	return dto.ToAlertDTO(a), nil
}

func loadAlert(ctx context.Context, repo alert.Repository, log logger.Interface, id uint) (*alert.Alert, error) {
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, alert.ErrAlertNotFound) {
			return nil, errors.NewNotFoundError("alert not found")
		}
		log.Errorw("failed to get alert", "alert_id", id, "error", err)
		return nil, errors.NewInternalError("failed to get alert")
	}
	return a, nil
}
