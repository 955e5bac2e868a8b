package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/mocks"
	"github.com/phrazzld/mart-api/internal/service"
	"github.com/phrazzld/mart-api/internal/service/auth"
	"github.com/phrazzld/mart-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountDeps struct {
	users  *mocks.MockUserStore
	tokens *mocks.MockTokenStore
	jwt    *mocks.MockJWTService
	hasher *mocks.MockPasswordHasher
}

func newAccountService(t *testing.T) (*service.AccountServiceImpl, accountDeps) {
	t.Helper()
	deps := accountDeps{
		users:  mocks.NewMockUserStore(),
		tokens: mocks.NewMockTokenStore(),
		jwt:    &mocks.MockJWTService{Token: "signed-token", Lifetime: 30 * time.Minute},
		hasher: &mocks.MockPasswordHasher{},
	}
	return service.NewAccountService(deps.users, deps.tokens, deps.jwt, deps.hasher, nil), deps
}

func seedUser(t *testing.T, users *mocks.MockUserStore, email, password string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Dara", email, mocks.MockHash(password), 1)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestAccountService_Register(t *testing.T) {
	t.Parallel()

	t.Run("stores hashed password", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)

		user, err := svc.Register(context.Background(), service.Registration{
			Name: "Dara", Email: "Dara@Example.com", Password: "secret123", StaffID: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "dara@example.com", user.Email)
		assert.Equal(t, mocks.MockHash("secret123"), user.Password)

		stored, err := deps.users.GetByEmail(context.Background(), "dara@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(3), stored.StaffID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)
		seedUser(t, deps.users, "dara@example.com", "secret123")

		_, err := svc.Register(context.Background(), service.Registration{
			Name: "Dara", Email: "dara@example.com", Password: "secret123", StaffID: 1,
		})
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("hash failure", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)
		deps.hasher.HashFn = func(string) (string, error) { return "", errors.New("boom") }

		_, err := svc.Register(context.Background(), service.Registration{
			Name: "Dara", Email: "dara@example.com", Password: "secret123", StaffID: 1,
		})
		assert.Error(t, err)
		assert.Empty(t, deps.users.Users)
	})
}

func TestAccountService_Login(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)
		seeded := seedUser(t, deps.users, "dara@example.com", "secret123")

		var issuedFor int64
		deps.jwt.GenerateTokenFn = func(_ context.Context, userID int64) (string, error) {
			issuedFor = userID
			return "signed-token", nil
		}

		session, err := svc.Login(context.Background(), "DARA@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", session.AccessToken)
		assert.Equal(t, 30*time.Minute, session.ExpiresIn)
		assert.Equal(t, seeded.ID, session.User.ID)
		assert.Equal(t, seeded.ID, issuedFor)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)

		_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Zero(t, deps.hasher.CompareCallCount)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)
		seedUser(t, deps.users, "dara@example.com", "secret123")

		_, err := svc.Login(context.Background(), "dara@example.com", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
		assert.Equal(t, 1, deps.hasher.CompareCallCount)
	})

	t.Run("store failure is not a credential error", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)
		deps.users.GetByEmailFn = func(context.Context, string) (*domain.User, error) {
			return nil, errors.New("connection reset")
		}

		_, err := svc.Login(context.Background(), "dara@example.com", "secret123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAccountService_Logout(t *testing.T) {
	t.Parallel()

	t.Run("revokes and purges", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)
		deps.tokens.Revoked["stale"] = time.Now().Add(-time.Hour)

		exp := time.Now().Add(time.Hour)
		require.NoError(t, svc.Logout(context.Background(), "jti-1", exp))

		revoked, err := deps.tokens.IsRevoked(context.Background(), "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
		assert.NotContains(t, deps.tokens.Revoked, "stale")
	})

	t.Run("purge failure is ignored", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)
		deps.tokens.PurgeExpiredFn = func(context.Context, time.Time) (int64, error) {
			return 0, errors.New("boom")
		}

		assert.NoError(t, svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)))
	})

	t.Run("missing token id", func(t *testing.T) {
		t.Parallel()
		svc, _ := newAccountService(t)
		assert.ErrorIs(t, svc.Logout(context.Background(), "", time.Now()), auth.ErrMissingToken)
	})
}

func TestAccountService_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("replaces hash", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)
		u := seedUser(t, deps.users, "dara@example.com", "secret123")

		require.NoError(t, svc.ChangePassword(context.Background(), u.ID, "secret123", "newsecret"))

		stored, err := deps.users.GetByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, mocks.MockHash("newsecret"), stored.Password)
	})

	t.Run("current mismatch", func(t *testing.T) {
		t.Parallel()
		svc, deps := newAccountService(t)
		u := seedUser(t, deps.users, "dara@example.com", "secret123")

		err := svc.ChangePassword(context.Background(), u.ID, "wrong", "newsecret")
		assert.ErrorIs(t, err, service.ErrCurrentPasswordMismatch)

		stored, _ := deps.users.GetByID(context.Background(), u.ID)
		assert.Equal(t, mocks.MockHash("secret123"), stored.Password)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc, _ := newAccountService(t)
		err := svc.ChangePassword(context.Background(), 99, "a", "b")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
