package utils

import (
	"sync"
	"time"
)

// HealthStatus represents the latest probe of the snapshot backend.
type HealthStatus struct {
	Storage   bool      `json:"storage"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The probe reports whether the snapshot backend is reachable.
func StartHealthMonitor(probe func() bool, interval time.Duration) {
	record := func() {
		healthMu.Lock()
		currentHealth = HealthStatus{Storage: probe(), CheckedAt: time.Now()}
		healthMu.Unlock()
	}
	record()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			record()
		}
	}()
}
