package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"goproductos/internal/domain/services"
	"goproductos/internal/ports/repositories"
	"goproductos/pkg/logger"
)

// TokenRepository реализует интерфейс repositories.TokenRepository для работы с Postgres.
type TokenRepository struct {
	pool PgxPoolInterface
}

// NewTokenRepository создает новый экземпляр репозитория токенов.
func NewTokenRepository(pool PgxPoolInterface) repositories.TokenRepository {
	return &TokenRepository{pool: pool}
}

// Store сохраняет новый access токен в реестре.
func (r *TokenRepository) Store(ctx context.Context, token *services.AccessToken) error {
	log := logger.Log(ctx).With(zap.String("repository", "token"), zap.String("method", "Store"))

	query := `
        INSERT INTO access_tokens (user_id, token, is_revoked)
        VALUES ($1, $2, $3)
    `

	_, err := r.pool.Exec(ctx, query,
		token.UserID,
		token.Token,
		token.IsRevoked,
	)

	if err != nil {
		log.Error(ctx, "error storing access token", zap.Error(err))
		return fmt.Errorf("error storing access token: %w", err)
	}

	return nil
}

// FindByToken находит токен по его значению.
func (r *TokenRepository) FindByToken(ctx context.Context, token string) (*services.AccessToken, error) {
	log := logger.Log(ctx).With(zap.String("repository", "token"), zap.String("method", "FindByToken"))

	query := `
        SELECT id, user_id, token, created_at, is_revoked
        FROM access_tokens
        WHERE token = $1
    `

	var accessToken services.AccessToken
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&accessToken.ID,
		&accessToken.UserID,
		&accessToken.Token,
		&accessToken.CreatedAt,
		&accessToken.IsRevoked,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "token not found")
			return nil, services.ErrInvalidAccessToken
		}
		log.Error(ctx, "error finding access token", zap.Error(err))
		return nil, fmt.Errorf("error querying access token: %w", err)
	}

	return &accessToken, nil
}

// Revoke отзывает access токен. Отзыв уже отозванного токена не является ошибкой.
func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("repository", "token"), zap.String("method", "Revoke"))

	query := `
        UPDATE access_tokens
        SET is_revoked = true
        WHERE token = $1
    `

	result, err := r.pool.Exec(ctx, query, token)
	if err != nil {
		log.Error(ctx, "error revoking access token", zap.Error(err))
		return fmt.Errorf("error revoking access token: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "token not found for revocation")
		return services.ErrInvalidAccessToken
	}

	return nil
}
