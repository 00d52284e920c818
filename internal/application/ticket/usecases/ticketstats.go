package usecases

import (
	"context"

	"incidentdesk/internal/domain/ticket"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type TicketStatsResult struct {
	ByStatus   map[string]int64
	ByPriority map[string]int64
}

// TicketStatsUseCase aggregates live tickets for the dashboard counters.
type TicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewTicketStatsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *TicketStatsUseCase {
	return &TicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *TicketStatsUseCase) Execute(ctx context.Context) (*TicketStatsResult, error) {
	byStatus, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, errors.NewInternalError("failed to aggregate tickets", err.Error())
	}

	byPriority, err := uc.ticketRepo.CountByPriority(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by priority", "error", err)
		return nil, errors.NewInternalError("failed to aggregate tickets", err.Error())
	}

	statusCounts := make(map[string]int64, len(byStatus))
	for status, count := range byStatus {
		statusCounts[status.String()] = count
	}

	return &TicketStatsResult{
		ByStatus:   statusCounts,
		ByPriority: byPriority,
	}, nil
}
