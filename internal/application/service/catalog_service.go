package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/roamly/roamly/internal/domain/models"
	"github.com/roamly/roamly/internal/domain/ports"
	"go.uber.org/zap"
)

// CatalogService owns the process-wide catalog. The catalog is written
// exactly once by Load and is read-only afterwards; Snapshot reports a
// ready flag so callers can gate on load completion instead of crashing
// into an empty dataset.
type CatalogService struct {
	log    *zap.Logger
	source ports.CatalogSource

	mu      sync.RWMutex
	catalog models.Catalog
	ready   bool
}

func NewCatalogService(log *zap.Logger, source ports.CatalogSource) *CatalogService {
	return &CatalogService{
		log:    log,
		source: source,
	}
}

// Load performs the single fetch of the session. A failed load leaves the
// store unready for the rest of the process lifetime; there is no retry.
func (s *CatalogService) Load(ctx context.Context) error {
	const op = "service.CatalogService.Load"

	logger := s.log.With(zap.String("op", op))

	s.mu.RLock()
	loaded := s.ready
	s.mu.RUnlock()
	if loaded {
		logger.Debug("catalog already loaded, skipping")
		return nil
	}

	catalog, err := s.source.Fetch(ctx)
	if err != nil {
		logger.Error("catalog load failed", zap.Error(err))
		return fmt.Errorf("%s: fetch catalog: %w", op, err)
	}

	s.mu.Lock()
	s.catalog = catalog
	s.ready = true
	s.mu.Unlock()

	logger.Info("catalog loaded",
		zap.Int("temples", len(catalog.Temples)),
		zap.Int("beaches", len(catalog.Beaches)),
		zap.Int("countries", len(catalog.Countries)),
	)
	logger.Info("catalog contents", zap.Any("catalog", catalog))

	return nil
}

func (s *CatalogService) Snapshot() (models.Catalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog, s.ready
}
