package bootstrap

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appMigrations "github.com/yigit/studentdesk/internal/app/migrations"
	appMiddleware "github.com/yigit/studentdesk/internal/middleware"
)

// SchemaGate makes sure the students table exists before a request reaches it.
// When the store was down at startup the schema is ensured on the first request
// that finds it reachable; after one success the gate is a no-op.
type SchemaGate struct {
	mu       sync.Mutex
	ready    atomic.Bool
	migrator *appMigrations.Migrator
	logger   zerolog.Logger
}

// NewSchemaGate creates a gate; ready reports whether the schema is already known to exist
func NewSchemaGate(db appMigrations.Executor, ready bool, lgr zerolog.Logger) *SchemaGate {
	g := &SchemaGate{
		migrator: appMigrations.NewMigrator(db, lgr),
		logger:   lgr,
	}
	g.ready.Store(ready)
	return g
}

// Ready reports whether the schema has been ensured
func (g *SchemaGate) Ready() bool {
	return g.ready.Load()
}

// Ensure runs the schema scripts unless a previous call succeeded
func (g *SchemaGate) Ensure(ctx context.Context) error {
	if g.ready.Load() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ready.Load() {
		return nil
	}
	if err := g.migrator.EnsureSchema(ctx); err != nil {
		g.logger.Warn().Err(err).Msg("Schema still not ensured")
		return err
	}

	g.ready.Store(true)
	return nil
}

// Middleware ensures the schema before the handler runs and fails the request otherwise
func (g *SchemaGate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := g.Ensure(c.Request.Context()); err != nil {
			appMiddleware.HandleAPIError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
