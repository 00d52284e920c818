package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
	"incidentdesk/internal/infrastructure/persistence/mappers"
	"incidentdesk/internal/infrastructure/persistence/models"
	"incidentdesk/internal/shared/db"
)

// allowedTicketOrderByFields whitelists ORDER BY columns to prevent SQL
// injection through sort parameters.
var allowedTicketOrderByFields = map[string]bool{
	"id":         true,
	"title":      true,
	"status":     true,
	"priority":   true,
	"created_at": true,
	"updated_at": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces nullable columns through so restore can write
	// deleted_at back to NULL.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "priority", "problem_type", "status", "updated_at", "deleted_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return r.getByID(ctx, ticketID, db.NotDeleted())
}

func (r *TicketRepository) GetDeletedByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return r.getByID(ctx, ticketID, db.OnlyDeleted())
}

func (r *TicketRepository) getByID(ctx context.Context, ticketID uint, scope func(*gorm.DB) *gorm.DB) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(scope).
		First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadAttachments(ctx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{}).Scopes(db.NotDeleted())

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order(r.orderClause(filter.SortBy, filter.SortOrder))

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.TicketModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) orderClause(sortBy, sortOrder string) string {
	column := "created_at"
	if allowedTicketOrderByFields[sortBy] {
		column = sortBy
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return column + " " + direction
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Total  int64
	}
	if err := tx.
		Model(&models.TicketModel{}).
		Scopes(db.NotDeleted()).
		Select("status, COUNT(*) as total").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.TicketStatus]int64, len(rows))
	for _, row := range rows {
		counts[vo.TicketStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func (r *TicketRepository) CountByPriority(ctx context.Context) (map[string]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Priority string
		Total    int64
	}
	if err := tx.
		Model(&models.TicketModel{}).
		Scopes(db.NotDeleted()).
		Select("priority, COUNT(*) as total").
		Group("priority").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by priority: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Priority] = row.Total
	}
	return counts, nil
}

func (r *TicketRepository) SaveAttachment(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) GetAttachmentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var rows []models.TicketAttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, 0, len(rows))
	for i := range rows {
		a, err := r.mapper.AttachmentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func (r *TicketRepository) loadAttachments(ctx context.Context, t *ticket.Ticket, ticketID uint) error {
	attachments, err := r.GetAttachmentsByTicketID(ctx, ticketID)
	if err != nil {
		return err
	}
	for _, a := range attachments {
		if err := t.AddAttachment(a); err != nil {
			return err
		}
	}
	return nil
}

// unresolvedRow carries the flat SELECT used for report generation.
type unresolvedRow struct {
	models.TicketModel
	UserEmail string
}

func (r *TicketRepository) GetUnresolved(ctx context.Context) ([]*ticket.ReportRow, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []unresolvedRow
	if err := tx.
		Table("tickets").
		Select("tickets.*, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = tickets.user_id").
		Scopes(db.NotDeletedWithAlias("tickets")).
		Where("tickets.status = ?", vo.StatusNoResolu.String()).
		Order("tickets.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load unresolved tickets: %w", err)
	}

	return r.toReportRows(rows)
}

func (r *TicketRepository) GetUnresolvedByID(ctx context.Context, ticketID uint) (*ticket.ReportRow, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []unresolvedRow
	if err := tx.
		Table("tickets").
		Select("tickets.*, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = tickets.user_id").
		Scopes(db.NotDeletedWithAlias("tickets")).
		Where("tickets.status = ?", vo.StatusNoResolu.String()).
		Where("tickets.id = ?", ticketID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load unresolved ticket: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	reportRows, err := r.toReportRows(rows)
	if err != nil {
		return nil, err
	}
	return reportRows[0], nil
}

func (r *TicketRepository) toReportRows(rows []unresolvedRow) ([]*ticket.ReportRow, error) {
	result := make([]*ticket.ReportRow, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i].TicketModel)
		if err != nil {
			return nil, err
		}
		result = append(result, &ticket.ReportRow{
			Ticket:    t,
			UserEmail: rows[i].UserEmail,
		})
	}
	return result, nil
}
