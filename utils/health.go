package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis       []bool    `json:"redis"`
	Reservation bool      `json:"reservation"`
	CheckedAt   time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// reservationURL is probed with a plain GET; any HTTP response counts as up.
func StartHealthMonitor(redisClients []*redis.Client, reservationURL string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		httpClient := &http.Client{Timeout: 5 * time.Second}

		for range ticker.C {
			var redisHealth []bool

			for _, client := range redisClients {
				err := client.Ping(ctx).Err()
				redisHealth = append(redisHealth, err == nil)
			}

			reservationHealthy := false
			if resp, err := httpClient.Get(reservationURL); err == nil {
				resp.Body.Close()
				reservationHealthy = true
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:       redisHealth,
				Reservation: reservationHealthy,
				CheckedAt:   time.Now(),
			}
			mu.Unlock()
		}
	}()
}
