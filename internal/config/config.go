package config

import "sync"

const (
	MinFPSLimit = 10
	MaxFPSLimit = 240
)

// RenderSettings holds settings that can change while the game runs
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means uncapped
	verbose  bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 60,
}

// GetFPSLimit returns the frame cap, or 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Non-positive values remove the cap.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit <= 0 {
		globalRenderSettings.fpsLimit = 0
		return
	}
	// Clamp to reasonable values
	if limit < MinFPSLimit {
		limit = MinFPSLimit
	}
	if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}
	globalRenderSettings.fpsLimit = limit
}

func IsVerbose() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.verbose
}

func SetVerbose(v bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.verbose = v
}
