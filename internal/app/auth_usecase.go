// Package app реализует бизнес-логику каталога продуктов.
package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"goproductos/internal/domain/entities"
	"goproductos/internal/domain/services"
	"goproductos/internal/ports/api"
	"goproductos/internal/ports/cache"
	"goproductos/internal/ports/repositories"
	svc "goproductos/internal/ports/services"
	"goproductos/pkg/logger"
)

const (
	methodRegister  = "Register"
	methodLogin     = "Login"
	methodLogout    = "Logout"
	methodAuthorize = "Authorize"

	msgStartRegistration  = "starting user registration"
	msgRegistrationFailed = "registration rejected by validation"
	msgEmailExists        = "user with this email already exists"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent email"
	msgInvalidPassword    = "invalid password provided"
	msgUserLoggedIn       = "user logged in successfully"
	msgTokenIssued        = "access token issued"
	msgProcessingLogout   = "processing logout request"
	msgUserLoggedOut      = "user logged out successfully"
	msgAuthorizing        = "authorizing request"
	msgTokenCacheHit      = "token resolved from cache"
	msgRevokedTokenUse    = "attempt to use revoked token"
	msgRequestAuthorized  = "request authorized"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrGenerateToken     = "failed to generate access token"
	msgErrStoreToken        = "failed to store access token"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrRevokingToken     = "failed to revoke access token"
	msgErrFindingToken      = "error finding access token"
	msgErrCacheToken        = "failed to cache token owner"
	msgErrInvalidateCache   = "failed to invalidate token cache"

	errCtxCheckingUser       = "checking existing user"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxIssuingToken       = "issuing token"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxRevokingToken      = "revoking token"
	errCtxValidatingToken    = "validating token"
	errCtxGeneratingToken    = "generating token"
	errCtxStoringToken       = "storing token"
)

// Сообщения валидации регистрации.
const (
	msgNameRequired     = "El nombre es obligatorio."
	msgEmailRequired    = "El email es obligatorio."
	msgEmailInvalid     = "El email debe ser una dirección válida."
	msgEmailTaken       = "El email ya está registrado."
	msgPasswordRequired = "La contraseña es obligatoria."
	msgPasswordTooShort = "La contraseña debe tener al menos 8 caracteres."
	msgPasswordMismatch = "La confirmación de la contraseña no coincide."
)

// Префикс ключей кэша токенов.
const tokenCacheKeyPrefix = "token:"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	tokenRepo   repositories.TokenRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	tokenCache  cache.Cache
	cacheTTL    time.Duration
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	tokenCache cache.Cache,
	cacheTTL time.Duration,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		tokenCache:  tokenCache,
		cacheTTL:    cacheTTL,
	}
}

// Register создает нового пользователя и выдает ему первый токен.
// Все нарушения валидации собираются в одну ValidationError.
func (a *AuthUseCaseImpl) Register(ctx context.Context, name, email, password, passwordConfirmation string) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))
	log.Debug(ctx, msgStartRegistration)

	validation := entities.NewValidationError()

	if name == "" {
		validation.Add("name", msgNameRequired)
	}

	switch {
	case email == "":
		validation.Add("email", msgEmailRequired)
	case !emailRegex.MatchString(email):
		validation.Add("email", msgEmailInvalid)
	default:
		existing, err := a.userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
			return nil, "", fmt.Errorf("%s: %w", errCtxCheckingUser, err)
		}
		if existing != nil {
			log.Debug(ctx, msgEmailExists)
			validation.Add("email", msgEmailTaken)
		}
	}

	switch {
	case password == "":
		validation.Add("password", msgPasswordRequired)
	case len(password) < services.MinPasswordLength:
		validation.Add("password", msgPasswordTooShort)
	case password != passwordConfirmation:
		validation.Add("password", msgPasswordMismatch)
	}

	if validation.HasViolations() {
		log.Debug(ctx, msgRegistrationFailed, zap.Int("violations", len(validation.Violations)))
		return nil, "", validation
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	createdUser, err := a.userRepo.Create(ctx, &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))

	token, err := a.issueToken(ctx, createdUser)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.String("userID", createdUser.ID))
		return nil, "", fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	return createdUser, token, nil
}

// Login аутентифицирует пользователя по email и паролю.
// Неизвестный email и неверный пароль намеренно неразличимы для клиента.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, "", fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, "", fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword, zap.String("userID", user.ID))
		return nil, "", fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	token, err := a.issueToken(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.String("userID", user.ID))
		return nil, "", fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	return user, token, nil
}

// Logout отзывает ровно тот токен, который был предъявлен.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	if err := a.tokenRepo.Revoke(ctx, token); err != nil {
		if errors.Is(err, services.ErrInvalidAccessToken) {
			log.Debug(ctx, msgRevokedTokenUse)
			return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
		}
		log.Error(ctx, msgErrRevokingToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
	}

	if err := a.tokenCache.Delete(ctx, tokenCacheKey(token)); err != nil {
		log.Warn(ctx, msgErrInvalidateCache, zap.Error(err))
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// Authorize - шлюз авторизации: разрешает предъявленный токен во владельца.
// Токен действителен, только если он есть в реестре и не отозван.
func (a *AuthUseCaseImpl) Authorize(ctx context.Context, token string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthorize))
	log.Debug(ctx, msgAuthorizing)

	if token == "" {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrInvalidAccessToken)
	}

	if userID, err := a.tokenCache.Get(ctx, tokenCacheKey(token)); err == nil && userID != "" {
		user, err := a.userRepo.FindByID(ctx, userID)
		if err == nil {
			log.Debug(ctx, msgTokenCacheHit, zap.String("userID", userID))
			return user, nil
		}
	}

	accessToken, err := a.tokenRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAccessToken) {
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, err)
		}
		log.Error(ctx, msgErrFindingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	if accessToken.IsRevoked {
		log.Debug(ctx, msgRevokedTokenUse, zap.String("userID", accessToken.UserID))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrRevokedAccessToken)
	}

	user, err := a.userRepo.FindByID(ctx, accessToken.UserID)
	if err != nil {
		log.Error(ctx, msgErrFindingUser, zap.Error(err), zap.String("userID", accessToken.UserID))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if err := a.tokenCache.Set(ctx, tokenCacheKey(token), user.ID, a.cacheTTL); err != nil {
		log.Warn(ctx, msgErrCacheToken, zap.Error(err))
	}

	log.Debug(ctx, msgRequestAuthorized, zap.String("userID", user.ID))
	return user, nil
}

// Вспомогательная функция: генерирует непрозрачный токен и сохраняет его в реестре.
func (a *AuthUseCaseImpl) issueToken(ctx context.Context, user *entities.User) (string, error) {
	log := logger.Log(ctx).With(zap.String("userID", user.ID))

	token, err := a.tokenSvc.GenerateToken(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtxGeneratingToken, services.ErrTokenGenerationFailed)
	}

	if err := a.tokenRepo.Store(ctx, &services.AccessToken{
		UserID:    user.ID,
		Token:     token,
		IsRevoked: false,
	}); err != nil {
		log.Error(ctx, msgErrStoreToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxStoringToken, err)
	}

	log.Debug(ctx, msgTokenIssued)
	return token, nil
}

// Ключ кэша строится из хэша токена, сам токен в Redis не попадает.
func tokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenCacheKeyPrefix + hex.EncodeToString(sum[:])
}
