package cache

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"skill-swap/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const revokedPrefix = "auth:revoked:"

var ErrUnavailable = errors.New("redis unavailable")

// TokenDenylist remembers revoked access-token ids until they expire.
// When Redis cannot be reached at start-up every read reports "not
// revoked" and every write returns ErrUnavailable.
type TokenDenylist struct {
	client *redis.Client
	logger *zap.Logger
	now    func() time.Time

	warnedUnavailable atomic.Bool
}

func NewTokenDenylist(cfg config.RedisConfig, logger *zap.Logger) *TokenDenylist {
	if logger == nil {
		logger = zap.NewNop()
	}

	addr := net.JoinHostPort(strings.TrimSpace(cfg.Host), strings.TrimSpace(cfg.Port))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, token revocation disabled", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return &TokenDenylist{logger: logger, now: time.Now}
	}

	logger.Info("redis connected", zap.String("addr", addr), zap.Int("db", cfg.DB))
	return NewTokenDenylistFromClient(client, logger)
}

func NewTokenDenylistFromClient(client *redis.Client, logger *zap.Logger) *TokenDenylist {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenDenylist{client: client, logger: logger, now: time.Now}
}

func (d *TokenDenylist) available() bool {
	return d != nil && d.client != nil
}

func (d *TokenDenylist) warnOnce(err error) {
	if d == nil || d.logger == nil {
		return
	}
	if d.warnedUnavailable.CompareAndSwap(false, true) {
		d.logger.Warn("redis error, bypassing token denylist", zap.Error(err))
	}
}

// Revoke stores tokenID until expiresAt. Tokens already expired are a no-op.
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if !d.available() {
		return ErrUnavailable
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return errors.New("empty token id")
	}

	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		return nil
	}

	if err := d.client.Set(ctx, revokedPrefix+tokenID, strconv.FormatInt(expiresAt.Unix(), 10), ttl).Err(); err != nil {
		d.warnOnce(err)
		return err
	}
	return nil
}

// IsRevoked fails open: lookup errors are logged once and treated as not revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) bool {
	if !d.available() || tokenID == "" {
		return false
	}
	n, err := d.client.Exists(ctx, revokedPrefix+tokenID).Result()
	if err != nil {
		d.warnOnce(err)
		return false
	}
	return n > 0
}

func (d *TokenDenylist) Close() error {
	if !d.available() {
		return nil
	}
	return d.client.Close()
}
