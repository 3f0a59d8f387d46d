package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RevocationStore implements ports.RevocationStore. The mark is the Unix
// time of the revocation; credentials issued at or before it are dead. The
// key only needs to outlive the longest credential, so it carries the
// session lifetime as TTL.
type RevocationStore struct {
	client *goredis.Client
	prefix string
}

// NewRevocationStore creates a new Redis-backed revocation store.
func NewRevocationStore(client *goredis.Client) *RevocationStore {
	return &RevocationStore{
		client: client,
		prefix: "revoked:",
	}
}

// RevokeAll stamps the account with the current time.
func (s *RevocationStore) RevokeAll(ctx context.Context, accountID int64, ttl time.Duration) error {
	key := fmt.Sprintf("%s%d", s.prefix, accountID)
	if err := s.client.Set(ctx, key, time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("redis revocation set: %w", err)
	}
	return nil
}

// RevokedAt returns the revocation mark, or 0 when none is set.
func (s *RevocationStore) RevokedAt(ctx context.Context, accountID int64) (int64, error) {
	key := fmt.Sprintf("%s%d", s.prefix, accountID)
	mark, err := s.client.Get(ctx, key).Int64()
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("redis revocation get: %w", err)
	}
	return mark, nil
}
