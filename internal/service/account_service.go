package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/platform/logger"
	"github.com/phrazzld/mart-api/internal/redact"
	"github.com/phrazzld/mart-api/internal/service/auth"
	"github.com/phrazzld/mart-api/internal/store"
)

// Registration carries already-validated registration input.
type Registration struct {
	Name     string
	Email    string
	Password string
	StaffID  int64
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}

// AccountService provides the authentication use cases.
type AccountService interface {
	// Register hashes the password and stores a new user.
	// Returns store.ErrEmailExists if the email is taken.
	Register(ctx context.Context, reg Registration) (*domain.User, error)

	// Login checks credentials and issues an access token.
	// Returns ErrInvalidCredentials for an unknown email or wrong password.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout revokes the token with the given id until it expires.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error

	// ChangePassword replaces the user's password after checking the current one.
	// Returns ErrCurrentPasswordMismatch if current is wrong.
	ChangePassword(ctx context.Context, userID int64, current, next string) error
}

// AccountServiceImpl implements AccountService
type AccountServiceImpl struct {
	users  store.UserStore
	tokens store.TokenStore
	jwt    auth.JWTService
	hasher auth.PasswordHasher
	logger *slog.Logger
	now    func() time.Time
}

var _ AccountService = (*AccountServiceImpl)(nil)

// NewAccountService creates a new AccountService
func NewAccountService(
	users store.UserStore,
	tokens store.TokenStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *AccountServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountServiceImpl{
		users:  users,
		tokens: tokens,
		jwt:    jwtService,
		hasher: hasher,
		logger: logger.With("component", "account_service"),
		now:    time.Now,
	}
}

// log prefers the request-scoped logger so entries carry the trace id.
func (s *AccountServiceImpl) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l.With("component", "account_service")
	}
	return s.logger
}

// Register implements AccountService.
func (s *AccountServiceImpl) Register(ctx context.Context, reg Registration) (*domain.User, error) {
	hashed, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user, err := domain.NewUser(reg.Name, reg.Email, hashed, reg.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.log(ctx).Debug("attempted to register an existing email")
		} else {
			s.log(ctx).Error("failed to save user", "error", redact.Error(err))
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log(ctx).Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login implements AccountService.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.log(ctx).Debug("login with unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user for login: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.log(ctx).Warn("stored password hash rejected", "user_id", user.ID, "error", err)
		}
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.log(ctx).Info("user logged in", "user_id", user.ID)
	return &Session{AccessToken: token, ExpiresIn: s.jwt.TokenLifetime(), User: user}, nil
}

// Logout implements AccountService. Expired revocations are purged on the
// way out; a failed purge is logged and otherwise ignored.
func (s *AccountServiceImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return auth.ErrMissingToken
	}
	if err := s.tokens.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	if n, err := s.tokens.PurgeExpired(ctx, s.now()); err != nil {
		s.log(ctx).Warn("failed to purge expired token revocations", "error", redact.Error(err))
	} else if n > 0 {
		s.log(ctx).Debug("purged expired token revocations", "count", n)
	}
	return nil
}

// ChangePassword implements AccountService.
func (s *AccountServiceImpl) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if err := s.hasher.Compare(user.Password, current); err != nil {
		return ErrCurrentPasswordMismatch
	}

	hashed, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hashed); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	s.log(ctx).Info("password changed", "user_id", userID)
	return nil
}
