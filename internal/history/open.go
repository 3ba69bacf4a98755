package history

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/smukkama/crop-advisory/internal/database"
)

// Backend names accepted by Open
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Backend is what every store implementation provides
type Backend interface {
	Store
	Claimer
	Dismissals
}

// Open returns the store for the named backend. Only the client the
// backend needs has to be non-nil.
func Open(name string, redisClient *redis.Client, db *database.DB, clock Clock) (Backend, error) {
	switch name {
	case BackendMemory, "":
		return NewMemoryStore(clock), nil
	case BackendRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("%s backend: no redis client", name)
		}
		return NewRedisStore(redisClient, clock), nil
	case BackendPostgres:
		if db == nil {
			return nil, fmt.Errorf("%s backend: no database", name)
		}
		return NewPostgresStore(db, clock), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
