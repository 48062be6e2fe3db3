package session

import (
	"fmt"

	"github.com/apna-adda/adda/internal/common/config"
)

// NewStore creates a session store based on configuration.
func NewStore(cfg *config.SessionConfig) (Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(cfg.TTL), nil
	case "redis":
		return NewRedisStore(&cfg.Redis, cfg.TTL)
	default:
		return nil, fmt.Errorf("unsupported session store type: %s", cfg.Type)
	}
}
