package usecases

import (
	"context"
	"time"

	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/infrastructure/ratelimit"
	"incidentdesk/internal/shared/authorization"
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

type mockUserRepo struct {
	saveFunc             func(ctx context.Context, u *user.User) error
	getByIDFunc          func(ctx context.Context, userID uint) (*user.User, error)
	getActiveByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	existsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	listRegularFunc      func(ctx context.Context) ([]*user.User, error)
	deleteRegularFunc    func(ctx context.Context, userID uint) error
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	return m.saveFunc(ctx, u)
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	return m.getByIDFunc(ctx, userID)
}

func (m *mockUserRepo) GetActiveByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getActiveByEmailFunc(ctx, email)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmailFunc(ctx, email)
}

func (m *mockUserRepo) ListRegular(ctx context.Context) ([]*user.User, error) {
	return m.listRegularFunc(ctx)
}

func (m *mockUserRepo) DeleteRegular(ctx context.Context, userID uint) error {
	return m.deleteRegularFunc(ctx, userID)
}

type mockSessionRepo struct {
	saveFunc          func(ctx context.Context, session *user.Session) error
	deleteFunc        func(ctx context.Context, sessionID string) error
	deleteExpiredFunc func(ctx context.Context) error
}

func (m *mockSessionRepo) Save(ctx context.Context, session *user.Session) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFunc != nil {
		return m.deleteExpiredFunc(ctx)
	}
	return nil
}

type mockHasher struct {
	hashFunc   func(password string) (string, error)
	verifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	generateFunc func(userID uint, sessionID string, role authorization.UserRole) (string, time.Time, error)
}

func (m *mockTokenIssuer) Generate(userID uint, sessionID string, role authorization.UserRole) (string, time.Time, error) {
	if m.generateFunc != nil {
		return m.generateFunc(userID, sessionID, role)
	}
	return "token", time.Now().Add(time.Hour), nil
}

type mockLoginLimiter struct {
	allowFunc func(key string, config ratelimit.LoginLimitConfig) (bool, error)

	resetKeys []string
}

func (m *mockLoginLimiter) Allow(key string, config ratelimit.LoginLimitConfig) (bool, error) {
	if m.allowFunc != nil {
		return m.allowFunc(key, config)
	}
	return true, nil
}

func (m *mockLoginLimiter) Reset(key string) error {
	m.resetKeys = append(m.resetKeys, key)
	return nil
}
