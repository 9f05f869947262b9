package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle counts login attempts per username+IP in redis to slow down
// online password guessing. With no redis client configured it allows
// everything; a redis outage also fails open so login keeps working.
type LoginThrottle struct {
	Rdb    *redis.Client
	Limit  int64
	Window time.Duration
}

func NewLoginThrottle(rdb *redis.Client, limit int64, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginThrottle{Rdb: rdb, Limit: limit, Window: window}
}

func (t *LoginThrottle) Allow(ctx context.Context, username, ip string) bool {
	if t == nil || t.Rdb == nil {
		return true
	}
	key := "login_attempts:" + username + ":" + ip
	n, err := t.Rdb.Incr(ctx, key).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		t.Rdb.Expire(ctx, key, t.Window)
	}
	return n <= t.Limit
}
