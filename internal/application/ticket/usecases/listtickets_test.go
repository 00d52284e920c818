package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
	"incidentdesk/internal/shared/errors"
)

func TestListTicketsUseCase_Execute(t *testing.T) {
	t.Run("maps tickets and passes the filter through", func(t *testing.T) {
		var captured ticket.Filter
		repo := &mockTicketRepo{
			listFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
				captured = filter
				return []*ticket.Ticket{liveTicket(t, 1), liveTicket(t, 2)}, 7, nil
			},
		}
		uc := NewListTicketsUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), ListTicketsCommand{
			Status:    "open",
			Priority:  "high",
			OwnerID:   3,
			Page:      2,
			PageSize:  10,
			SortBy:    "created_at",
			SortOrder: "desc",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), result.Total)
		assert.Len(t, result.Tickets, 2)
		assert.Equal(t, uint(1), result.Tickets[0].ID)
		assert.Equal(t, "open", result.Tickets[0].Status)

		require.NotNil(t, captured.Status)
		assert.Equal(t, vo.StatusOpen, *captured.Status)
		require.NotNil(t, captured.Priority)
		assert.Equal(t, "high", *captured.Priority)
		require.NotNil(t, captured.UserID)
		assert.Equal(t, uint(3), *captured.UserID)
		assert.Equal(t, 2, captured.Page)
		assert.Equal(t, 10, captured.PageSize)
	})

	t.Run("zero owner means no owner filter", func(t *testing.T) {
		repo := &mockTicketRepo{
			listFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
				assert.Nil(t, filter.UserID)
				assert.Nil(t, filter.Status)
				return nil, 0, nil
			},
		}
		uc := NewListTicketsUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), ListTicketsCommand{})
		require.NoError(t, err)
		assert.Empty(t, result.Tickets)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewListTicketsUseCase(&mockTicketRepo{}, nopLogger{})

		result, err := uc.Execute(context.Background(), ListTicketsCommand{Status: "pending"})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockTicketRepo{
			listFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
				return nil, 0, fmt.Errorf("query failed")
			},
		}
		uc := NewListTicketsUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), ListTicketsCommand{})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsInternalError(err))
	})
}

func TestGetTicketUseCase_Execute(t *testing.T) {
	ticketWithAttachment := func(t *testing.T) *ticket.Ticket {
		t.Helper()
		tk := liveTicket(t, 5)
		att, err := ticket.NewAttachment(5, "5_stored.png", "capture.png", 1024, "image/png")
		require.NoError(t, err)
		require.NoError(t, tk.AddAttachment(att))
		return tk
	}

	t.Run("owner reads own ticket", func(t *testing.T) {
		repo := &mockTicketRepo{
			getByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return ticketWithAttachment(t), nil
			},
		}
		uc := NewGetTicketUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), GetTicketCommand{
			TicketID:    5,
			RequesterID: liveTicket(t, 5).GetOwnerID(),
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), result.Ticket.ID)
		require.Len(t, result.Attachments, 1)
		assert.Equal(t, "capture.png", result.Attachments[0].OriginalName)
		assert.Equal(t, "image/png", result.Attachments[0].MimeType)
	})

	t.Run("admin reads any ticket", func(t *testing.T) {
		repo := &mockTicketRepo{
			getByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return ticketWithAttachment(t), nil
			},
		}
		uc := NewGetTicketUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), GetTicketCommand{
			TicketID:    5,
			RequesterID: 9999,
			IsAdmin:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), result.Ticket.ID)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		repo := &mockTicketRepo{
			getByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return ticketWithAttachment(t), nil
			},
		}
		uc := NewGetTicketUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), GetTicketCommand{
			TicketID:    5,
			RequesterID: 9999,
		})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("missing ticket", func(t *testing.T) {
		repo := &mockTicketRepo{
			getByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, fmt.Errorf("record not found")
			},
		}
		uc := NewGetTicketUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background(), GetTicketCommand{TicketID: 404, RequesterID: 1})
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestTicketStatsUseCase_Execute(t *testing.T) {
	t.Run("aggregates by status and priority", func(t *testing.T) {
		repo := &mockTicketRepo{
			countByStatusFunc: func(ctx context.Context) (map[vo.TicketStatus]int64, error) {
				return map[vo.TicketStatus]int64{
					vo.StatusOpen:     3,
					vo.StatusResolved: 1,
				}, nil
			},
			countByPriorityFunc: func(ctx context.Context) (map[string]int64, error) {
				return map[string]int64{"high": 2, "low": 2}, nil
			},
		}
		uc := NewTicketStatsUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.ByStatus["open"])
		assert.Equal(t, int64(1), result.ByStatus["resolved"])
		assert.Equal(t, int64(2), result.ByPriority["high"])
	})

	t.Run("status count failure", func(t *testing.T) {
		repo := &mockTicketRepo{
			countByStatusFunc: func(ctx context.Context) (map[vo.TicketStatus]int64, error) {
				return nil, fmt.Errorf("query failed")
			},
		}
		uc := NewTicketStatsUseCase(repo, nopLogger{})

		result, err := uc.Execute(context.Background())
		require.Error(t, err)
		assert.Nil(t, result)
	})
}
