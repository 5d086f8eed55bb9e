package declared

import (
	"context"
	"fmt"
	"time"
)

// Store saves one Declaration per upload session.
type Store interface {
	Declare(ctx context.Context, sessionID string, d Declaration) error
	// Declared returns ErrNotDeclared when the session has no declaration
	// or it expired.
	Declared(ctx context.Context, sessionID string) (Declaration, error)
	Clear(ctx context.Context, sessionID string) error
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config selects and tunes the store backend.
type Config struct {
	Backend string        `env:"STORE_BACKEND" envDefault:"memory"`
	TTL     time.Duration `env:"DECLARED_TTL" envDefault:"2h"`
	// MemoryCapacity caps the sessions held by the memory backend.
	MemoryCapacity int `env:"DECLARED_MEMORY_CAPACITY" envDefault:"10000"`
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendRedis, BackendMongo:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Backend)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("DECLARED_TTL must be positive, got %s", c.TTL)
	}
	if c.Backend == BackendMemory && c.MemoryCapacity <= 0 {
		return fmt.Errorf("DECLARED_MEMORY_CAPACITY must be positive, got %d", c.MemoryCapacity)
	}
	return nil
}
