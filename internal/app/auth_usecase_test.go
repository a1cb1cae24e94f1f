package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goproductos/internal/app"
	"goproductos/internal/domain/entities"
	"goproductos/internal/domain/services"
	"goproductos/internal/ports/api"
)

var (
	errDatabaseConnection = errors.New("database connection error")
	errCacheUnavailable   = errors.New("cache unavailable")
)

const testCacheTTL = 5 * time.Minute

type authMocks struct {
	userRepo    *mockUserRepository
	tokenRepo   *mockTokenRepository
	passwordSvc *mockPasswordService
	tokenSvc    *mockTokenService
	cache       *mockCache
}

func newAuthMocks() *authMocks {
	return &authMocks{
		userRepo:    new(mockUserRepository),
		tokenRepo:   new(mockTokenRepository),
		passwordSvc: new(mockPasswordService),
		tokenSvc:    new(mockTokenService),
		cache:       new(mockCache),
	}
}

func (m *authMocks) useCase() api.AuthUseCase {
	return app.NewAuthUseCase(m.userRepo, m.tokenRepo, m.passwordSvc, m.tokenSvc, m.cache, testCacheTTL)
}

func (m *authMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.userRepo.AssertExpectations(t)
	m.tokenRepo.AssertExpectations(t)
	m.passwordSvc.AssertExpectations(t)
	m.tokenSvc.AssertExpectations(t)
	m.cache.AssertExpectations(t)
}

func anyCacheKey() interface{} {
	return mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "token:")
	})
}

func TestRegister(t *testing.T) {
	testName := "Juan Pérez"
	testEmail := "juan@example.com"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	issuedToken := "issued-token-123"

	createdUser := &entities.User{
		ID:           "user-123",
		Name:         testName,
		Email:        testEmail,
		PasswordHash: hashedPassword,
	}

	t.Run("success - user registered and token issued", func(t *testing.T) {
		m := newAuthMocks()
		m.userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()
		m.passwordSvc.On("Hash", mock.Anything, testPassword).Return(hashedPassword, nil).Once()
		m.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.Name == testName && u.Email == testEmail && u.PasswordHash == hashedPassword
		})).Return(createdUser, nil).Once()
		m.tokenSvc.On("GenerateToken", mock.Anything).Return(issuedToken, nil).Once()
		m.tokenRepo.On("Store", mock.Anything, mock.MatchedBy(func(tok *services.AccessToken) bool {
			return tok.UserID == createdUser.ID && tok.Token == issuedToken && !tok.IsRevoked
		})).Return(nil).Once()

		user, token, err := m.useCase().Register(context.Background(), testName, testEmail, testPassword, testPassword)

		require.NoError(t, err)
		assert.Equal(t, createdUser, user)
		assert.Equal(t, issuedToken, token)
		m.assertExpectations(t)
	})

	t.Run("validation - all fields missing are reported together", func(t *testing.T) {
		m := newAuthMocks()

		user, token, err := m.useCase().Register(context.Background(), "", "", "", "")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.Empty(t, token)

		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		messages := validationErr.Messages()
		assert.Equal(t, []string{"El nombre es obligatorio."}, messages["name"])
		assert.Equal(t, []string{"El email es obligatorio."}, messages["email"])
		assert.Equal(t, []string{"La contraseña es obligatoria."}, messages["password"])
		m.assertExpectations(t)
	})

	t.Run("validation - malformed email", func(t *testing.T) {
		m := newAuthMocks()

		_, _, err := m.useCase().Register(context.Background(), testName, "not-an-email", testPassword, testPassword)

		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"El email debe ser una dirección válida."}, validationErr.Messages()["email"])
		m.assertExpectations(t)
	})

	t.Run("validation - email already registered", func(t *testing.T) {
		m := newAuthMocks()
		m.userRepo.On("FindByEmail", mock.Anything, testEmail).Return(createdUser, nil).Once()

		_, _, err := m.useCase().Register(context.Background(), testName, testEmail, testPassword, testPassword)

		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"El email ya está registrado."}, validationErr.Messages()["email"])
		m.assertExpectations(t)
	})

	t.Run("validation - password shorter than eight characters", func(t *testing.T) {
		m := newAuthMocks()
		m.userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()

		_, _, err := m.useCase().Register(context.Background(), testName, testEmail, "short12", "short12")

		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"La contraseña debe tener al menos 8 caracteres."}, validationErr.Messages()["password"])
		m.assertExpectations(t)
	})

	t.Run("validation - password confirmation mismatch", func(t *testing.T) {
		m := newAuthMocks()
		m.userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, entities.ErrUserNotFound).Once()

		_, _, err := m.useCase().Register(context.Background(), testName, testEmail, testPassword, "different123")

		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"La confirmación de la contraseña no coincide."}, validationErr.Messages()["password"])
		m.assertExpectations(t)
	})

	t.Run("error - database failure checking existing user", func(t *testing.T) {
		m := newAuthMocks()
		m.userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, errDatabaseConnection).Once()

		_, _, err := m.useCase().Register(context.Background(), testName, testEmail, testPassword, testPassword)

		require.ErrorIs(t, err, errDatabaseConnection)

		var validationErr *entities.ValidationError
		assert.False(t, errors.As(err, &validationErr))
		m.assertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	testEmail := "juan@example.com"
	testPassword := "password123"
	hashedPassword := "hashed_password"
	issuedToken := "issued-token-456"

	testUser := &entities.User{
		ID:           "user-123",
		Name:         "Juan Pérez",
		Email:        testEmail,
		PasswordHash: hashedPassword,
	}

	t.Run("success - user logged in and token issued", func(t *testing.T) {
		m := newAuthMocks()
		m.userRepo.On("FindByEmail", mock.Anything, testEmail).Return(testUser, nil).Once()
		m.passwordSvc.On("Verify", mock.Anything, testPassword, hashedPassword).Return(true, nil).Once()
		m.tokenSvc.On("GenerateToken", mock.Anything).Return(issuedToken, nil).Once()
		m.tokenRepo.On("Store", mock.Anything, mock.MatchedBy(func(tok *services.AccessToken) bool {
			return tok.UserID == testUser.ID && tok.Token == issuedToken && !tok.IsRevoked
		})).Return(nil).Once()

		user, token, err := m.useCase().Login(context.Background(), testEmail, testPassword)

		require.NoError(t, err)
		assert.Equal(t, testUser, user)
		assert.Equal(t, issuedToken, token)
		m.assertExpectations(t)
	})

	t.Run("error - unknown email yields the same error as a wrong password", func(t *testing.T) {
		m := newAuthMocks()
		m.userRepo.On("FindByEmail", mock.Anything, "nadie@example.com").Return(nil, entities.ErrUserNotFound).Once()
		m.userRepo.On("FindByEmail", mock.Anything, testEmail).Return(testUser, nil).Once()
		m.passwordSvc.On("Verify", mock.Anything, "wrongpassword", hashedPassword).Return(false, nil).Once()

		_, _, unknownEmailErr := m.useCase().Login(context.Background(), "nadie@example.com", testPassword)
		_, _, wrongPasswordErr := m.useCase().Login(context.Background(), testEmail, "wrongpassword")

		require.ErrorIs(t, unknownEmailErr, services.ErrInvalidCredentials)
		require.ErrorIs(t, wrongPasswordErr, services.ErrInvalidCredentials)
		m.assertExpectations(t)
	})

	t.Run("error - database failure finding user", func(t *testing.T) {
		m := newAuthMocks()
		m.userRepo.On("FindByEmail", mock.Anything, testEmail).Return(nil, errDatabaseConnection).Once()

		_, _, err := m.useCase().Login(context.Background(), testEmail, testPassword)

		require.ErrorIs(t, err, errDatabaseConnection)
		assert.False(t, errors.Is(err, services.ErrInvalidCredentials))
		m.assertExpectations(t)
	})
}

func TestLogout(t *testing.T) {
	token := "token-to-revoke"

	t.Run("success - token revoked and cache invalidated", func(t *testing.T) {
		m := newAuthMocks()
		m.tokenRepo.On("Revoke", mock.Anything, token).Return(nil).Once()
		m.cache.On("Delete", mock.Anything, anyCacheKey()).Return(nil).Once()

		err := m.useCase().Logout(context.Background(), token)

		require.NoError(t, err)
		m.assertExpectations(t)
	})

	t.Run("success - cache invalidation failure is tolerated", func(t *testing.T) {
		m := newAuthMocks()
		m.tokenRepo.On("Revoke", mock.Anything, token).Return(nil).Once()
		m.cache.On("Delete", mock.Anything, anyCacheKey()).Return(errCacheUnavailable).Once()

		err := m.useCase().Logout(context.Background(), token)

		require.NoError(t, err)
		m.assertExpectations(t)
	})

	t.Run("error - unknown token", func(t *testing.T) {
		m := newAuthMocks()
		m.tokenRepo.On("Revoke", mock.Anything, token).Return(services.ErrInvalidAccessToken).Once()

		err := m.useCase().Logout(context.Background(), token)

		require.ErrorIs(t, err, services.ErrInvalidAccessToken)
		m.assertExpectations(t)
	})
}

func TestAuthorize(t *testing.T) {
	token := "presented-token"

	testUser := &entities.User{
		ID:    "user-123",
		Name:  "Juan Pérez",
		Email: "juan@example.com",
	}

	activeToken := &services.AccessToken{
		ID:        "token-id",
		UserID:    testUser.ID,
		Token:     token,
		IsRevoked: false,
	}

	t.Run("error - empty token", func(t *testing.T) {
		m := newAuthMocks()

		user, err := m.useCase().Authorize(context.Background(), "")

		require.ErrorIs(t, err, services.ErrInvalidAccessToken)
		assert.Nil(t, user)
		m.assertExpectations(t)
	})

	t.Run("success - token resolved via registry and cached", func(t *testing.T) {
		m := newAuthMocks()
		m.cache.On("Get", mock.Anything, anyCacheKey()).Return("", nil).Once()
		m.tokenRepo.On("FindByToken", mock.Anything, token).Return(activeToken, nil).Once()
		m.userRepo.On("FindByID", mock.Anything, testUser.ID).Return(testUser, nil).Once()
		m.cache.On("Set", mock.Anything, anyCacheKey(), testUser.ID, testCacheTTL).Return(nil).Once()

		user, err := m.useCase().Authorize(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, testUser, user)
		m.assertExpectations(t)
	})

	t.Run("success - token resolved from cache without registry lookup", func(t *testing.T) {
		m := newAuthMocks()
		m.cache.On("Get", mock.Anything, anyCacheKey()).Return(testUser.ID, nil).Once()
		m.userRepo.On("FindByID", mock.Anything, testUser.ID).Return(testUser, nil).Once()

		user, err := m.useCase().Authorize(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, testUser, user)
		m.tokenRepo.AssertNotCalled(t, "FindByToken", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("error - token absent from registry", func(t *testing.T) {
		m := newAuthMocks()
		m.cache.On("Get", mock.Anything, anyCacheKey()).Return("", nil).Once()
		m.tokenRepo.On("FindByToken", mock.Anything, token).Return(nil, services.ErrInvalidAccessToken).Once()

		user, err := m.useCase().Authorize(context.Background(), token)

		require.ErrorIs(t, err, services.ErrInvalidAccessToken)
		assert.Nil(t, user)
		m.assertExpectations(t)
	})

	t.Run("error - revoked token stays revoked", func(t *testing.T) {
		revokedToken := &services.AccessToken{
			ID:        "token-id",
			UserID:    testUser.ID,
			Token:     token,
			IsRevoked: true,
		}

		m := newAuthMocks()
		m.cache.On("Get", mock.Anything, anyCacheKey()).Return("", nil).Twice()
		m.tokenRepo.On("FindByToken", mock.Anything, token).Return(revokedToken, nil).Twice()

		for range 2 {
			user, err := m.useCase().Authorize(context.Background(), token)
			require.ErrorIs(t, err, services.ErrRevokedAccessToken)
			assert.Nil(t, user)
		}
		m.assertExpectations(t)
	})

	t.Run("success - cache write failure is tolerated", func(t *testing.T) {
		m := newAuthMocks()
		m.cache.On("Get", mock.Anything, anyCacheKey()).Return("", errCacheUnavailable).Once()
		m.tokenRepo.On("FindByToken", mock.Anything, token).Return(activeToken, nil).Once()
		m.userRepo.On("FindByID", mock.Anything, testUser.ID).Return(testUser, nil).Once()
		m.cache.On("Set", mock.Anything, anyCacheKey(), testUser.ID, testCacheTTL).Return(errCacheUnavailable).Once()

		user, err := m.useCase().Authorize(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, testUser, user)
		m.assertExpectations(t)
	})
}
