package additive

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Source produces reference records.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Record, error)
}

// Registry hands out the current catalog snapshot. Readers never block; a
// reload builds a new snapshot and swaps it in atomically.
type Registry struct {
	current atomic.Pointer[Catalog]
	source  Source
	logger  *zap.Logger
	mu      sync.Mutex
}

// NewRegistry starts with an empty, unloaded snapshot. Call Reload to populate it.
func NewRegistry(source Source, logger *zap.Logger) *Registry {
	r := &Registry{source: source, logger: logger.Named("additives")}
	r.current.Store(Empty())
	return r
}

// NewStaticRegistry wraps an already built catalog. Reload is a no-op error.
func NewStaticRegistry(c *Catalog) *Registry {
	r := &Registry{logger: zap.NewNop()}
	r.current.Store(c)
	return r
}

// Snapshot returns the catalog to use for the duration of one request.
func (r *Registry) Snapshot() *Catalog {
	return r.current.Load()
}

// Reload loads from the source and swaps the snapshot in on success. On
// failure the previous snapshot stays in place.
func (r *Registry) Reload(ctx context.Context) (*Catalog, error) {
	if r.source == nil {
		return r.Snapshot(), fmt.Errorf("registry has no source")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.source.Load(ctx)
	if err != nil {
		r.logger.Error("Reference catalog load failed",
			zap.String("source", r.source.Name()),
			zap.Error(err))
		return r.Snapshot(), fmt.Errorf("load %s: %w", r.source.Name(), err)
	}

	c, err := NewCatalog(records, r.source.Name())
	if err != nil {
		r.logger.Error("Reference catalog rejected",
			zap.String("source", r.source.Name()),
			zap.Error(err))
		return r.Snapshot(), fmt.Errorf("build catalog from %s: %w", r.source.Name(), err)
	}

	r.current.Store(c)
	r.logger.Info("Reference catalog loaded",
		zap.String("source", c.Source()),
		zap.Int("records", c.Len()))
	return c, nil
}
