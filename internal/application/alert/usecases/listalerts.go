package usecases

import (
	"context"
	"time"

	"github.com/polyforma/qualitrack/internal/application/alert/dto"
	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/constants"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type ListAlertsQuery struct {
	Actor              auth.Actor
	Status             *string
	ProductID          *uint
	ProductionRecordID *uint
	CreatedFrom        *time.Time
	CreatedTo          *time.Time
	Page               int
	PageSize           int
	SortBy             string
	SortOrder          string
}

type ListAlertsResult struct {
	Alerts     []*dto.AlertDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListAlertsUseCase struct {
	alertRepo alert.Repository
	logger    logger.Interface
}

func NewListAlertsUseCase(alertRepo alert.Repository, logger logger.Interface) *ListAlertsUseCase {
	return &ListAlertsUseCase{alertRepo: alertRepo, logger: logger}
}

func (uc *ListAlertsUseCase) Execute(ctx context.Context, query ListAlertsQuery) (*ListAlertsResult, error) {
	if err := auth.Require(query.Actor); err != nil {
		return nil, err
	}

	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := alert.Filter{
		ProductID:          query.ProductID,
		ProductionRecordID: query.ProductionRecordID,
		CreatedFrom:        query.CreatedFrom,
		CreatedTo:          query.CreatedTo,
	}
	filter.Page = query.Page
	filter.PageSize = query.PageSize
	filter.SortBy = query.SortBy
	filter.SortOrder = query.SortOrder

	if query.Status != nil && *query.Status != "" {
		status, err := alert.NewStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.CreatedFrom != nil && query.CreatedTo != nil && query.CreatedTo.Before(*query.CreatedFrom) {
		return nil, errors.NewValidationError("created_to must not be before created_from")
	}

	alerts, total, err := uc.alertRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list alerts", "error", err)
		return nil, errors.NewInternalError("failed to list alerts")
	}

	return &ListAlertsResult{
		Alerts:     dto.ToAlertDTOList(alerts),
		TotalCount: total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}
