package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var _ Checker = (*LoginChecker)(nil)

type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return false, err
	}

	createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return false, err
	}

	if time.Since(time.Unix(createdAtUnix, 0)) > lc.ttl {
		return false, nil
	}

	return true, nil
}
