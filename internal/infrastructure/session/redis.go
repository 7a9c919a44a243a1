package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"jobboard/internal/config"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const revokedKeyPrefix = "session:revoked:"

// RevocationStore tracks logged-out token IDs until their natural
// expiry. A missing redis degrades to a no-op store: tokens then
// simply live out their (short) access lifetime.
type RevocationStore struct {
	client *redis.Client

	warnedUnavailable atomic.Bool
}

func NewRevocationStore(cfg config.RedisConfig) *RevocationStore {
	addr := fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.Host), strings.TrimSpace(cfg.Port))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnf("redis unavailable, token revocation disabled: %v", err)
		_ = client.Close()
		return &RevocationStore{client: nil}
	}

	return &RevocationStore{client: client}
}

func (s *RevocationStore) isUnavailable() bool {
	return s == nil || s.client == nil
}

func (s *RevocationStore) warnUnavailableOnce(err error) {
	if s == nil {
		return
	}
	if s.warnedUnavailable.CompareAndSwap(false, true) {
		log.Warnf("redis unavailable, token revocation disabled: %v", err)
	}
}

func (s *RevocationStore) Ping(ctx context.Context) error {
	if s.isUnavailable() {
		return errors.New("redis unavailable")
	}
	return s.client.Ping(ctx).Err()
}

// Revoke denylists a token id for the remainder of its life.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s.isUnavailable() {
		return nil
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		s.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.isUnavailable() {
		return false, nil
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return false, nil
	}
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		s.warnUnavailableOnce(err)
		return false, err
	}
	return n > 0, nil
}

func (s *RevocationStore) Close() error {
	if s.isUnavailable() {
		return nil
	}
	return s.client.Close()
}
