package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRefreshTokenNotFound is returned for unknown or expired tokens.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores refresh tokens with their owning employee.
type RefreshTokenRepository interface {
	Store(ctx context.Context, token, employeeID string, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

const refreshTokenPrefix = "refresh_token:"

type refreshTokenRepository struct {
	client *redis.Client
}

// NewRefreshTokenRepository instantiates the Redis-backed store.
func NewRefreshTokenRepository(client *redis.Client) RefreshTokenRepository {
	return &refreshTokenRepository{client: client}
}

func (r *refreshTokenRepository) Store(ctx context.Context, token, employeeID string, ttl time.Duration) error {
	return r.client.Set(ctx, refreshTokenPrefix+token, employeeID, ttl).Err()
}

func (r *refreshTokenRepository) Lookup(ctx context.Context, token string) (string, error) {
	employeeID, err := r.client.Get(ctx, refreshTokenPrefix+token).Result()
	if err == redis.Nil {
		return "", ErrRefreshTokenNotFound
	}
	if err != nil {
		return "", err
	}
	return employeeID, nil
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	return r.client.Del(ctx, refreshTokenPrefix+token).Err()
}
