package admin

import (
	"context"
	"errors"
	"time"

	"villamar/config"
	"villamar/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionPrefix = "adminSession:"

// ErrWrongPassword is returned when the dashboard secret does not match.
var ErrWrongPassword = errors.New("wrong dashboard password")

// SessionGate guards the admin dashboard behind a single shared secret.
// A successful login mints an opaque token held in Redis with a TTL. This is
// a UI convenience gate, not an authentication system: no users, no roles,
// and it must never be treated as a security boundary.
type SessionGate struct {
	Cache    *redis.Client
	Password string
	TTL      time.Duration
}

// NewSessionGate builds a gate from the loaded application config.
func NewSessionGate() *SessionGate {
	return &SessionGate{
		Cache:    utils.GetSessionCacheClient(),
		Password: config.AppConfig.AdminPassword,
		TTL:      time.Duration(config.AppConfig.SessionTTLHours) * time.Hour,
	}
}

// Login compares the submitted password against the shared secret and
// returns a fresh session token on success. An empty configured password
// always rejects.
func (g *SessionGate) Login(ctx context.Context, password string) (string, error) {
	if g.Password == "" || password != g.Password {
		return "", ErrWrongPassword
	}
	token := uuid.New().String()
	if err := g.Cache.Set(ctx, sessionPrefix+token, "1", g.TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Check reports whether the token belongs to a live session.
func (g *SessionGate) Check(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	n, err := g.Cache.Exists(ctx, sessionPrefix+token).Result()
	return err == nil && n > 0
}

// Logout ends the session. Deleting an unknown token is not an error.
func (g *SessionGate) Logout(ctx context.Context, token string) error {
	return g.Cache.Del(ctx, sessionPrefix+token).Err()
}
