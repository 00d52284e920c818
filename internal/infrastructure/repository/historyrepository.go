package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"incidentdesk/internal/domain/history"
	"incidentdesk/internal/infrastructure/persistence/mappers"
	"incidentdesk/internal/infrastructure/persistence/models"
	"incidentdesk/internal/shared/db"
)

type HistoryRepository struct {
	db     *gorm.DB
	mapper *mappers.HistoryMapper
}

func NewHistoryRepository(database *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     database,
		mapper: mappers.NewHistoryMapper(),
	}
}

func (r *HistoryRepository) Save(ctx context.Context, entry *history.Entry) error {
	model := r.mapper.ToModel(entry)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save historique entry: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// joinedRow is the flat SELECT for the historique listing. Joined columns
// are pointers because the referenced ticket or user may be gone.
type joinedRow struct {
	models.HistoriqueModel
	TicketTitle    *string
	TicketStatus   *string
	TicketPriority *string
	UserEmail      *string
	UserRole       *string
}

func (r *HistoryRepository) List(ctx context.Context, limit int) ([]*history.JoinedEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	if limit <= 0 {
		limit = 1000
	}

	var rows []joinedRow
	if err := tx.
		Table("historique").
		Select("historique.*, " +
			"tickets.title AS ticket_title, tickets.status AS ticket_status, tickets.priority AS ticket_priority, " +
			"users.email AS user_email, users.role AS user_role").
		Joins("LEFT JOIN tickets ON tickets.id = historique.ticket_id").
		Joins("LEFT JOIN users ON users.id = historique.user_id").
		Order("historique.created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list historique: %w", err)
	}

	entries := make([]*history.JoinedEntry, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.ToDomain(&rows[i].HistoriqueModel)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &history.JoinedEntry{
			Entry:          entry,
			TicketTitle:    rows[i].TicketTitle,
			TicketStatus:   rows[i].TicketStatus,
			TicketPriority: rows[i].TicketPriority,
			UserEmail:      rows[i].UserEmail,
			UserRole:       rows[i].UserRole,
		})
	}
	return entries, nil
}

// deletedRow flattens a soft-deleted ticket joined with its creator and the
// latest deleted historique entry.
type deletedRow struct {
	ID             uint
	Title          string
	Description    string
	Priority       string
	ProblemType    string
	Status         string
	CreatedAt      time.Time
	DeletedAt      *time.Time
	UserEmail      *string
	UserRole       *string
	DeletionReason *string
}

func (r *HistoryRepository) ListDeletedTickets(ctx context.Context) ([]*history.DeletedTicketRow, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []deletedRow
	if err := tx.
		Table("tickets").
		Select("tickets.id, tickets.title, tickets.description, tickets.priority, tickets.problem_type, "+
			"tickets.status, tickets.created_at, tickets.deleted_at, "+
			"users.email AS user_email, users.role AS user_role, "+
			"(SELECT h.details FROM historique h WHERE h.ticket_id = tickets.id AND h.action = ? "+
			"ORDER BY h.created_at DESC LIMIT 1) AS deletion_reason",
			history.ActionDeleted.String()).
		Joins("LEFT JOIN users ON users.id = tickets.user_id").
		Scopes(db.OnlyDeleted()).
		Order("tickets.deleted_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list deleted tickets: %w", err)
	}

	result := make([]*history.DeletedTicketRow, 0, len(rows))
	for i := range rows {
		row := &history.DeletedTicketRow{
			TicketID:       rows[i].ID,
			Title:          rows[i].Title,
			Description:    rows[i].Description,
			Priority:       rows[i].Priority,
			ProblemType:    rows[i].ProblemType,
			Status:         rows[i].Status,
			CreatedAt:      rows[i].CreatedAt,
			UserEmail:      rows[i].UserEmail,
			UserRole:       rows[i].UserRole,
			DeletionReason: rows[i].DeletionReason,
		}
		if rows[i].DeletedAt != nil {
			row.DeletedAt = *rows[i].DeletedAt
		}
		result = append(result, row)
	}
	return result, nil
}

func (r *HistoryRepository) CountByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.HistoriqueModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count historique entries: %w", err)
	}
	return count, nil
}
