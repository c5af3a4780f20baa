package redis

import (
	"context"
	"errors"
	"fmt"

	"handsup-market/internal/domain"

	"github.com/go-redis/redis/v8"
)

// RedisFCMTokenStore keeps the current push token per user email. A user
// holds at most one token; re-registration overwrites the previous one.
type RedisFCMTokenStore struct {
	client *redis.Client
}

func NewRedisFCMTokenStore(client *redis.Client) *RedisFCMTokenStore {
	return &RedisFCMTokenStore{client: client}
}

func tokenKey(userEmail string) string {
	return fmt.Sprintf("fcm:token:%s", userEmail)
}

func (s *RedisFCMTokenStore) SaveToken(ctx context.Context, userEmail, token string) error {
	return s.client.Set(ctx, tokenKey(userEmail), token, 0).Err()
}

func (s *RedisFCMTokenStore) GetToken(ctx context.Context, userEmail string) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(userEmail)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w for %s", domain.ErrFCMTokenNotFound, userEmail)
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisFCMTokenStore) HasToken(ctx context.Context, userEmail string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(userEmail)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteToken removes a user's token. Deleting an absent token is a no-op.
func (s *RedisFCMTokenStore) DeleteToken(ctx context.Context, userEmail string) error {
	return s.client.Del(ctx, tokenKey(userEmail)).Err()
}
