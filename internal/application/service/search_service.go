package service

import (
	"strings"

	derr "github.com/roamly/roamly/internal/domain/errors"
	"github.com/roamly/roamly/internal/domain/models"
	"github.com/roamly/roamly/internal/domain/ports"
	"go.uber.org/zap"
)

// SearchService resolves a keyword against the loaded catalog through three
// tiers, first applicable tier wins:
//
//  1. category alias ("beach"/"beaches", "temple"/"temples") returns that
//     category verbatim;
//  2. the first country whose name contains the query returns its cities;
//  3. full-text over every destination's name and description.
//
// Ordering is deterministic: source declaration order is preserved, and the
// flattened tier enumerates temples, beaches, then countries' cities.
type SearchService struct {
	log     *zap.Logger
	catalog ports.CatalogProvider
}

func NewSearchService(log *zap.Logger, catalog ports.CatalogProvider) *SearchService {
	return &SearchService{
		log:     log,
		catalog: catalog,
	}
}

// Search matches a query against the catalog. Callers gate empty queries
// before calling; an unready catalog yields ErrCatalogNotLoaded.
func (s *SearchService) Search(query string) ([]models.Destination, error) {
	const op = "service.SearchService.Search"

	catalog, ready := s.catalog.Snapshot()
	if !ready {
		return nil, derr.ErrCatalogNotLoaded
	}

	normalized := strings.ToLower(strings.TrimSpace(query))
	results := match(normalized, catalog)

	s.log.Debug("search executed",
		zap.String("op", op),
		zap.String("query", normalized),
		zap.Int("results", len(results)),
	)

	return results, nil
}

func match(query string, catalog models.Catalog) []models.Destination {
	switch query {
	case "beach", "beaches":
		return catalog.Beaches
	case "temple", "temples":
		return catalog.Temples
	}

	for _, country := range catalog.Countries {
		if strings.Contains(strings.ToLower(country.Name), query) {
			return country.Cities
		}
	}

	var matched []models.Destination
	for _, item := range flatten(catalog) {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Description), query) {
			matched = append(matched, item)
		}
	}

	return matched
}

func flatten(catalog models.Catalog) []models.Destination {
	size := len(catalog.Temples) + len(catalog.Beaches)
	for _, country := range catalog.Countries {
		size += len(country.Cities)
	}

	all := make([]models.Destination, 0, size)
	all = append(all, catalog.Temples...)
	all = append(all, catalog.Beaches...)
	for _, country := range catalog.Countries {
		all = append(all, country.Cities...)
	}

	return all
}
