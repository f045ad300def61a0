// Copyright (c) 2026 audio-server. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mfungorn/audio-server/internal/platform/apperr"
	"github.com/Mfungorn/audio-server/internal/platform/constants"
)

// RedisVerificationTokenRepository implements [VerificationTokenRepository]
// using Redis. TTL handling is delegated entirely to Redis key expiry.
type RedisVerificationTokenRepository struct {
	client *redis.Client
}

// NewVerificationTokenRepository creates a Redis-backed token store.
func NewVerificationTokenRepository(client *redis.Client) *RedisVerificationTokenRepository {
	return &RedisVerificationTokenRepository{client: client}
}

func (repository *RedisVerificationTokenRepository) Set(context context.Context, token string, customerID int64, ttl time.Duration) error {
	key := constants.RedisPrefixVerifyToken + token

	if err := repository.client.Set(context, key, strconv.FormatInt(customerID, 10), ttl).Err(); err != nil {
		return fmt.Errorf("redis_verify_token_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisVerificationTokenRepository) Get(context context.Context, token string) (int64, error) {
	key := constants.RedisPrefixVerifyToken + token

	value, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, apperr.NotFound("Verification token")
		}
		return 0, fmt.Errorf("redis_verify_token_get_failed: %w", err)
	}

	customerID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis_verify_token_corrupt: %w", err)
	}
	return customerID, nil
}

func (repository *RedisVerificationTokenRepository) Delete(context context.Context, token string) error {
	key := constants.RedisPrefixVerifyToken + token

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_verify_token_delete_failed: %w", err)
	}
	return nil
}
