package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/infrastructure/persistence/models"
	"incidentdesk/internal/shared/authorization"
	"incidentdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.UserModel{},
		&models.SessionModel{},
		&models.TicketModel{},
		&models.TicketAttachmentModel{},
		&models.HistoriqueModel{},
		&models.ScreenshotModel{},
	)
	require.NoError(t, err)

	return database
}

func seedTicket(t *testing.T, repo *TicketRepository, title string, userID uint, priority string, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(title, "Integration test description", priority, "software", userID)
	require.NoError(t, err)
	if status != vo.StatusOpen {
		require.NoError(t, tk.ChangeStatus(status))
	}
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func seedUser(t *testing.T, repo *UserRepository, email string, role authorization.UserRole) *user.User {
	t.Helper()

	account, err := user.NewUser(email, "hashed-password", role)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), account))
	return account
}

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
