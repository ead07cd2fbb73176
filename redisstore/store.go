package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/authbase-lab/userdb/entity"
	"github.com/authbase-lab/userdb/pkg/xredis"
	"github.com/authbase-lab/userdb/repository"
)

const tokenKeyPrefix = "access_token:"

// Store keeps access tokens in redis, keyed by the token string. It covers
// the subset of AccessTokenRepository an opaque token strategy needs:
// create, look up, destroy. Lookups honor the same notBefore cutoff as the
// relational repository and report absence as repository.ErrNotFound, so
// the two backends are swappable.
type Store interface {
	GetByToken(ctx context.Context, token string, notBefore time.Time) (*entity.AccessToken, error)
	Create(ctx context.Context, token *entity.AccessToken) error
	Delete(ctx context.Context, token *entity.AccessToken) error
}

type accessTokenStore struct {
	client xredis.Client
	ttl    time.Duration
}

// NewAccessTokenStore builds a Store over client. Records expire after ttl;
// zero keeps them until deleted.
func NewAccessTokenStore(client xredis.Client, ttl time.Duration) Store {
	return &accessTokenStore{client: client, ttl: ttl}
}

func (s *accessTokenStore) GetByToken(ctx context.Context, token string, notBefore time.Time) (*entity.AccessToken, error) {
	var record entity.AccessToken
	if err := s.client.GetObj(ctx, tokenKey(token), &record); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}

		return nil, err
	}

	if !notBefore.IsZero() && record.CreatedAt.Time().Before(notBefore.UTC()) {
		return nil, repository.ErrNotFound
	}

	return &record, nil
}

func (s *accessTokenStore) Create(ctx context.Context, token *entity.AccessToken) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = entity.NowUTC()
	}

	return s.client.SetObj(ctx, tokenKey(token.Token), token, s.ttl)
}

func (s *accessTokenStore) Delete(ctx context.Context, token *entity.AccessToken) error {
	return s.client.Del(ctx, tokenKey(token.Token))
}

func tokenKey(token string) string {
	return tokenKeyPrefix + token
}
