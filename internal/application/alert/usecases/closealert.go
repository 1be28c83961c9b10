package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/polyforma/qualitrack/internal/application/alert/dto"
	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/biztime"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type ResolveAlertCommand struct {
	Actor   auth.Actor
	AlertID uint
	Notes   string
}

type DismissAlertCommand struct {
	Actor   auth.Actor
	AlertID uint
}

type ResolveAlertUseCase struct {
	alertRepo alert.Repository
	logger    logger.Interface
}

func NewResolveAlertUseCase(alertRepo alert.Repository, logger logger.Interface) *ResolveAlertUseCase {
	return &ResolveAlertUseCase{alertRepo: alertRepo, logger: logger}
}

func (uc *ResolveAlertUseCase) Execute(ctx context.Context, cmd ResolveAlertCommand) (*dto.AlertDTO, error) {
	uc.logger.Infow("executing resolve alert use case", "alert_id", cmd.AlertID, "user_id", cmd.Actor.UserID)

	if err := auth.Require(cmd.Actor, auth.Approvers...); err != nil {
		return nil, err
	}
	if cmd.AlertID == 0 {
		return nil, errors.NewValidationError("alert ID is required")
	}
	if strings.TrimSpace(cmd.Notes) == "" {
		return nil, errors.NewValidationError("resolution notes are required")
	}

	return closeAlert(ctx, uc.alertRepo, uc.logger, cmd.AlertID, func(a *alert.Alert, now time.Time) error {
		return a.Resolve(cmd.Actor.UserID, cmd.Notes, now)
	})
}

type DismissAlertUseCase struct {
	alertRepo alert.Repository
	logger    logger.Interface
}

func NewDismissAlertUseCase(alertRepo alert.Repository, logger logger.Interface) *DismissAlertUseCase {
	return &DismissAlertUseCase{alertRepo: alertRepo, logger: logger}
}

func (uc *DismissAlertUseCase) Execute(ctx context.Context, cmd DismissAlertCommand) (*dto.AlertDTO, error) {
	uc.logger.Infow("executing dismiss alert use case", "alert_id", cmd.AlertID, "user_id", cmd.Actor.UserID)

	if err := auth.Require(cmd.Actor, auth.Approvers...); err != nil {
		return nil, err
	}
	if cmd.AlertID == 0 {
		return nil, errors.NewValidationError("alert ID is required")
	}

	return closeAlert(ctx, uc.alertRepo, uc.logger, cmd.AlertID, func(a *alert.Alert, now time.Time) error {
		return a.Dismiss(cmd.Actor.UserID, now)
	})
}

// closeAlert applies a terminal transition and stores it with a conditional
// update, so two concurrent closures cannot both succeed.
func closeAlert(
	ctx context.Context,
	repo alert.Repository,
	log logger.Interface,
	alertID uint,
	transition func(a *alert.Alert, now time.Time) error,
) (*dto.AlertDTO, error) {
	a, err := loadAlert(ctx, repo, log, alertID)
	if err != nil {
		return nil, err
	}

	if err := transition(a, biztime.NowUTC()); err != nil {
		if stderrors.Is(err, alert.ErrNotActive) {
			return nil, errors.NewConflictError("alert is no longer active", a.Status().String())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := repo.SaveClosure(ctx, a); err != nil {
		if stderrors.Is(err, alert.ErrNotActive) {
			log.Warnw("alert closed concurrently", "alert_id", alertID)
			return nil, errors.NewConflictError("alert is no longer active")
		}
		log.Errorw("failed to save alert closure", "alert_id", alertID, "error", err)
		return nil, errors.NewInternalError("failed to update alert")
	}

	log.Infow("alert closed", "alert_id", alertID, "status", a.Status().String())
	return dto.ToAlertDTO(a), nil
}
