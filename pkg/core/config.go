package core

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidConfig is returned by Config.Validate for out-of-range settings
var ErrInvalidConfig = errors.New("core: invalid render configuration")

// Config contains the read-only render settings shared by every worker
type Config struct {
	Width         int // Image width in pixels
	Height        int // Image height in pixels
	MaxSamples    int // Emission paths traced per pixel task
	MaxPathLength int // Maximum number of scattering events per emission path
	NumWorkers    int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:         400,
		Height:        400,
		MaxSamples:    16,
		MaxPathLength: 5,
		NumWorkers:    0, // Auto-detect CPU count
	}
}

// Validate checks that every setting is usable
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MaxSamples < 1:
		return fmt.Errorf("%w: max samples %d", ErrInvalidConfig, c.MaxSamples)
	case c.MaxPathLength < 1:
		return fmt.Errorf("%w: max path length %d", ErrInvalidConfig, c.MaxPathLength)
	}
	return nil
}

// Workers returns the effective worker count
func (c Config) Workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}
