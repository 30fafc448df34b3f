package attribute

import (
	"fmt"
	"runtime"
)

// DefaultChunkSize is the number of points a worker evaluates in one go.
const DefaultChunkSize = 1024

// Config configures evaluation of attributes.
type Config struct {
	// Precompute evaluates the attribute for every point at creation time.
	// Otherwise values are computed on demand, and only the statistics are
	// computed upfront.
	Precompute bool
	// Workers bounds the number of goroutines. 0 means GOMAXPROCS.
	Workers int
	// ChunkSize is the number of points per work item. 0 means
	// DefaultChunkSize.
	ChunkSize int
}

func (cfg Config) normalized() Config {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0", ErrInvalidConfig)
	}
	if cfg.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk size must be >= 0", ErrInvalidConfig)
	}
	return nil
}
