package tokenstore

import (
	"context"
	"telemed-service/internal/app/contracts"

	"golang.org/x/oauth2"
)

type redisTokenStore struct {
	RedisRepository contracts.RedisRepository
	Key             string
}

func NewRedisTokenStore(redisRepository contracts.RedisRepository, key string) contracts.TokenStore {
	return &redisTokenStore{
		RedisRepository: redisRepository,
		Key:             key,
	}
}

func (s *redisTokenStore) Load(ctx context.Context) (*oauth2.Token, error) {
	data, err := s.RedisRepository.Get(ctx, s.Key)
	if err != nil {
		return nil, err
	}
	return decodeToken([]byte(data))
}

// Save keeps the token without expiry; the refresh token outlives the
// access token.
func (s *redisTokenStore) Save(ctx context.Context, token *oauth2.Token) error {
	return s.RedisRepository.Set(ctx, s.Key, token, 0)
}
