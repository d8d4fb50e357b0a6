package utils

import (
	"context"
	"net"
	"sync"
	"time"

	"villamar/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	healthInterval  = 60 * time.Second
	healthTimeout   = 5 * time.Second
	smtpDialTimeout = 3 * time.Second
)

// SMTP probe results. "mock" means no relay is configured and notifications
// are being logged instead of sent.
const (
	SMTPOK   = "ok"
	SMTPDown = "down"
	SMTPMock = "mock"
)

// HealthStatus is a point-in-time snapshot of the collaborators a booking
// submission touches: the booking store, the two redis roles and the mail
// relay.
type HealthStatus struct {
	BookingStore bool      `json:"bookingStore"`
	Cache        bool      `json:"cache"`
	Sessions     bool      `json:"sessions"`
	SMTP         string    `json:"smtp"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest snapshot taken by the monitor.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// CheckHealth probes every collaborator once. Nil clients read as down, so a
// partially wired server still reports honestly.
func CheckHealth(ctx context.Context, cache, sessions *redis.Client, mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	return HealthStatus{
		BookingStore: mongoClient != nil && mongoClient.Ping(ctx, nil) == nil,
		Cache:        pingRedis(ctx, cache),
		Sessions:     pingRedis(ctx, sessions),
		SMTP:         probeSMTP(),
		CheckedAt:    time.Now(),
	}
}

// StartHealthMonitor takes an immediate snapshot and then refreshes it every
// minute, so /api/health never serves an empty status after boot.
func StartHealthMonitor(cache, sessions *redis.Client, mongoClient *mongo.Client) {
	refresh := func() {
		status := CheckHealth(context.Background(), cache, sessions, mongoClient)
		healthMu.Lock()
		currentHealth = status
		healthMu.Unlock()
	}

	refresh()
	go func() {
		ticker := time.NewTicker(healthInterval)
		defer ticker.Stop()
		for range ticker.C {
			refresh()
		}
	}()
}

func pingRedis(ctx context.Context, client *redis.Client) bool {
	return client != nil && client.Ping(ctx).Err() == nil
}

// probeSMTP checks TCP reachability of the configured relay. Delivery can
// still fail later; this only catches a relay that is gone entirely.
func probeSMTP() string {
	host := config.AppConfig.SMTPHost
	if host == "" {
		return SMTPMock
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, config.AppConfig.SMTPPort), smtpDialTimeout)
	if err != nil {
		return SMTPDown
	}
	conn.Close()
	return SMTPOK
}
