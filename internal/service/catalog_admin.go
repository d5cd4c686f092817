package service

import (
	"context"
	"time"

	"github.com/pageza/labellens/backend/internal/additive"
)

// CatalogStatus describes the reference catalog snapshot in use.
type CatalogStatus struct {
	Source   string    `json:"source"`
	Records  int       `json:"records"`
	Loaded   bool      `json:"loaded"`
	LoadedAt time.Time `json:"loaded_at"`
}

// CatalogAdminService exposes the additive registry to administrators.
type CatalogAdminService struct {
	registry *additive.Registry
}

func NewCatalogAdminService(registry *additive.Registry) *CatalogAdminService {
	return &CatalogAdminService{registry: registry}
}

func (s *CatalogAdminService) Status() CatalogStatus {
	return statusOf(s.registry.Snapshot())
}

// Reload swaps in a fresh snapshot. On failure the status reflects the
// snapshot still in service.
func (s *CatalogAdminService) Reload(ctx context.Context) (CatalogStatus, error) {
	c, err := s.registry.Reload(ctx)
	return statusOf(c), err
}

func statusOf(c *additive.Catalog) CatalogStatus {
	return CatalogStatus{
		Source:   c.Source(),
		Records:  c.Len(),
		Loaded:   c.Loaded(),
		LoadedAt: c.LoadedAt(),
	}
}
