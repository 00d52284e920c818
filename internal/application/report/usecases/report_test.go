package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                  {}
func (nopLogger) Info(msg string, args ...any)                   {}
func (nopLogger) Warn(msg string, args ...any)                   {}
func (nopLogger) Error(msg string, args ...any)                  {}
func (n nopLogger) With(args ...any) logger.Interface            { return n }
func (n nopLogger) Named(name string) logger.Interface           { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// reportTicketRepo stubs the two read-model queries the report use cases
// touch; everything else panics if reached.
type reportTicketRepo struct {
	ticket.Repository

	getUnresolvedFunc     func(ctx context.Context) ([]*ticket.ReportRow, error)
	getUnresolvedByIDFunc func(ctx context.Context, ticketID uint) (*ticket.ReportRow, error)
	getAttachmentsFunc    func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *reportTicketRepo) GetUnresolved(ctx context.Context) ([]*ticket.ReportRow, error) {
	return m.getUnresolvedFunc(ctx)
}

func (m *reportTicketRepo) GetUnresolvedByID(ctx context.Context, ticketID uint) (*ticket.ReportRow, error) {
	return m.getUnresolvedByIDFunc(ctx, ticketID)
}

func (m *reportTicketRepo) GetAttachmentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.getAttachmentsFunc != nil {
		return m.getAttachmentsFunc(ctx, ticketID)
	}
	return nil, nil
}

type stubRenderer struct {
	singleFunc func(row *ticket.ReportRow, attachments []*ticket.Attachment) ([]byte, error)
	batchFunc  func(rows []*ticket.ReportRow) ([]byte, error)
}

func (s *stubRenderer) GenerateSingle(row *ticket.ReportRow, attachments []*ticket.Attachment) ([]byte, error) {
	if s.singleFunc != nil {
		return s.singleFunc(row, attachments)
	}
	return []byte("%PDF-stub"), nil
}

func (s *stubRenderer) GenerateBatch(rows []*ticket.ReportRow) ([]byte, error) {
	if s.batchFunc != nil {
		return s.batchFunc(rows)
	}
	return []byte("%PDF-stub"), nil
}

func (s *stubRenderer) Filename(now time.Time) string {
	return "transfert_rapport_" + now.Format("2006-01-02_15-04-05") + ".pdf"
}

func reportRow(t *testing.T, id uint) *ticket.ReportRow {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, 1, "Stuck", "Description",
		vo.PriorityHigh, vo.ProblemSoftware, vo.StatusNoResolu, now, now, nil)
	require.NoError(t, err)
	return &ticket.ReportRow{Ticket: tk, UserEmail: "user@example.com"}
}

func TestSingleReportUseCase_Execute_Success(t *testing.T) {
	row := reportRow(t, 5)
	repo := &reportTicketRepo{
		getUnresolvedByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.ReportRow, error) {
			assert.Equal(t, uint(5), ticketID)
			return row, nil
		},
	}
	uc := NewSingleReportUseCase(repo, &stubRenderer{}, nopLogger{})

	result, err := uc.Execute(context.Background(), SingleReportCommand{TicketID: 5})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), result.Content)
	assert.Regexp(t, `^transfert_rapport_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.pdf$`, result.Filename)
}

func TestSingleReportUseCase_Execute_NotUnresolved(t *testing.T) {
	repo := &reportTicketRepo{
		getUnresolvedByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.ReportRow, error) {
			return nil, nil
		},
	}
	uc := NewSingleReportUseCase(repo, &stubRenderer{}, nopLogger{})

	result, err := uc.Execute(context.Background(), SingleReportCommand{TicketID: 5})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSingleReportUseCase_Execute_RendererFailure(t *testing.T) {
	repo := &reportTicketRepo{
		getUnresolvedByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.ReportRow, error) {
			return reportRow(t, 5), nil
		},
	}
	renderer := &stubRenderer{
		singleFunc: func(row *ticket.ReportRow, attachments []*ticket.Attachment) ([]byte, error) {
			return nil, fmt.Errorf("render failed")
		},
	}
	uc := NewSingleReportUseCase(repo, renderer, nopLogger{})

	result, err := uc.Execute(context.Background(), SingleReportCommand{TicketID: 5})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestBatchReportUseCase_Execute_Success(t *testing.T) {
	var rendered []*ticket.ReportRow
	repo := &reportTicketRepo{
		getUnresolvedFunc: func(ctx context.Context) ([]*ticket.ReportRow, error) {
			return []*ticket.ReportRow{reportRow(t, 1), reportRow(t, 2)}, nil
		},
	}
	renderer := &stubRenderer{
		batchFunc: func(rows []*ticket.ReportRow) ([]byte, error) {
			rendered = rows
			return []byte("%PDF-stub"), nil
		},
	}
	uc := NewBatchReportUseCase(repo, renderer, nopLogger{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Content)
	assert.Len(t, rendered, 2)
}

func TestBatchReportUseCase_Execute_NothingToReport(t *testing.T) {
	repo := &reportTicketRepo{
		getUnresolvedFunc: func(ctx context.Context) ([]*ticket.ReportRow, error) {
			return nil, nil
		},
	}
	uc := NewBatchReportUseCase(repo, &stubRenderer{}, nopLogger{})

	result, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsEmptyResultError(err))

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Aucun ticket non résolu trouvé", appErr.Message)
}
