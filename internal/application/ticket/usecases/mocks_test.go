package usecases

import (
	"context"
	"io"

	"incidentdesk/internal/domain/history"
	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
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

type mockTicketRepo struct {
	saveFunc            func(ctx context.Context, t *ticket.Ticket) error
	updateFunc          func(ctx context.Context, t *ticket.Ticket) error
	getByIDFunc         func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	getDeletedByIDFunc  func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	listFunc            func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	countByStatusFunc   func(ctx context.Context) (map[vo.TicketStatus]int64, error)
	countByPriorityFunc func(ctx context.Context) (map[string]int64, error)
	saveAttachmentFunc  func(ctx context.Context, a *ticket.Attachment) error
	getAttachmentsFunc  func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	getUnresolvedFunc   func(ctx context.Context) ([]*ticket.ReportRow, error)
	getUnresolvedByID   func(ctx context.Context, ticketID uint) (*ticket.ReportRow, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	return m.saveFunc(ctx, t)
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	return m.updateFunc(ctx, t)
}

func (m *mockTicketRepo) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return m.getByIDFunc(ctx, ticketID)
}

func (m *mockTicketRepo) GetDeletedByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return m.getDeletedByIDFunc(ctx, ticketID)
}

func (m *mockTicketRepo) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockTicketRepo) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	return m.countByStatusFunc(ctx)
}

func (m *mockTicketRepo) CountByPriority(ctx context.Context) (map[string]int64, error) {
	return m.countByPriorityFunc(ctx)
}

func (m *mockTicketRepo) SaveAttachment(ctx context.Context, a *ticket.Attachment) error {
	return m.saveAttachmentFunc(ctx, a)
}

func (m *mockTicketRepo) GetAttachmentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	return m.getAttachmentsFunc(ctx, ticketID)
}

func (m *mockTicketRepo) GetUnresolved(ctx context.Context) ([]*ticket.ReportRow, error) {
	return m.getUnresolvedFunc(ctx)
}

func (m *mockTicketRepo) GetUnresolvedByID(ctx context.Context, ticketID uint) (*ticket.ReportRow, error) {
	return m.getUnresolvedByID(ctx, ticketID)
}

type mockHistoryRepo struct {
	saveFunc               func(ctx context.Context, entry *history.Entry) error
	listFunc               func(ctx context.Context, limit int) ([]*history.JoinedEntry, error)
	listDeletedTicketsFunc func(ctx context.Context) ([]*history.DeletedTicketRow, error)
	countByTicketIDFunc    func(ctx context.Context, ticketID uint) (int64, error)
}

func (m *mockHistoryRepo) Save(ctx context.Context, entry *history.Entry) error {
	return m.saveFunc(ctx, entry)
}

func (m *mockHistoryRepo) List(ctx context.Context, limit int) ([]*history.JoinedEntry, error) {
	return m.listFunc(ctx, limit)
}

func (m *mockHistoryRepo) ListDeletedTickets(ctx context.Context) ([]*history.DeletedTicketRow, error) {
	return m.listDeletedTicketsFunc(ctx)
}

func (m *mockHistoryRepo) CountByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	return m.countByTicketIDFunc(ctx, ticketID)
}

// mockTxManager runs the function inline; the real manager only adds the
// gorm transaction to the context.
type mockTxManager struct{}

func (mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockFileStore struct {
	generateFunc func(ticketID uint, originalName string) (string, error)
	saveFunc     func(filename string, src io.Reader) (string, error)
	removeFunc   func(filename string) error

	removed []string
}

func (m *mockFileStore) GenerateFilename(ticketID uint, originalName string) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ticketID, originalName)
	}
	return "stored_" + originalName, nil
}

func (m *mockFileStore) Save(filename string, src io.Reader) (string, error) {
	if m.saveFunc != nil {
		return m.saveFunc(filename, src)
	}
	return filename, nil
}

func (m *mockFileStore) Remove(filename string) error {
	m.removed = append(m.removed, filename)
	if m.removeFunc != nil {
		return m.removeFunc(filename)
	}
	return nil
}
