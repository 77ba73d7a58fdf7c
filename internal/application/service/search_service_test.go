package service

import (
	"errors"
	"testing"

	derr "github.com/roamly/roamly/internal/domain/errors"
	"github.com/roamly/roamly/internal/domain/models"
	"go.uber.org/zap"
)

type providerMock struct {
	catalog models.Catalog
	ready   bool
}

func (m *providerMock) Snapshot() (models.Catalog, bool) {
	return m.catalog, m.ready
}

func testCatalog() models.Catalog {
	return models.Catalog{
		Temples: []models.Destination{
			{Name: "Angkor Wat", Description: "Khmer temple complex"},
			{Name: "Golden Pavilion", Description: "Zen temple in Kyoto"},
		},
		Beaches: []models.Destination{
			{Name: "Bora Bora", Description: "Lagoon and reef"},
			{Name: "Copacabana", Description: "Rio shoreline"},
		},
		Countries: []models.Country{
			{Name: "Japan", Cities: []models.Destination{{Name: "Tokyo"}, {Name: "Osaka"}}},
			{Name: "France", Cities: []models.Destination{{Name: "Paris"}}},
		},
	}
}

func newSearchService(catalog models.Catalog) *SearchService {
	return NewSearchService(zap.NewNop(), &providerMock{catalog: catalog, ready: true})
}

func destinationNames(items []models.Destination) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func assertNames(t *testing.T, got []models.Destination, want ...string) {
	t.Helper()
	names := destinationNames(got)
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestSearch_BeachAliasIgnoresCaseAndWhitespace(t *testing.T) {
	svc := newSearchService(testCatalog())

	for _, query := range []string{"beach", "beaches", "BEACH", " Beach "} {
		got, err := svc.Search(query)
		if err != nil {
			t.Fatalf("query %q: expected no error, got %v", query, err)
		}
		assertNames(t, got, "Bora Bora", "Copacabana")
	}
}

func TestSearch_TempleAlias(t *testing.T) {
	svc := newSearchService(testCatalog())

	for _, query := range []string{"temple", "temples", "Temple"} {
		got, err := svc.Search(query)
		if err != nil {
			t.Fatalf("query %q: expected no error, got %v", query, err)
		}
		assertNames(t, got, "Angkor Wat", "Golden Pavilion")
	}
}

func TestSearch_CountryReturnsCitiesInOrder(t *testing.T) {
	svc := newSearchService(testCatalog())

	got, err := svc.Search("japan")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, got, "Tokyo", "Osaka")
}

func TestSearch_CountrySubstringMatches(t *testing.T) {
	svc := newSearchService(testCatalog())

	got, err := svc.Search("jap")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, got, "Tokyo", "Osaka")
}

func TestSearch_FirstMatchingCountryWinsNoMerging(t *testing.T) {
	catalog := models.Catalog{
		Countries: []models.Country{
			{Name: "Ireland", Cities: []models.Destination{{Name: "Dublin"}}},
			{Name: "Iceland", Cities: []models.Destination{{Name: "Reykjavik"}}},
		},
	}
	svc := newSearchService(catalog)

	// Both country names contain "land"; only the first in catalog order counts.
	got, err := svc.Search("land")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, got, "Dublin")
}

func TestSearch_CountryWithNoCitiesReturnsEmpty(t *testing.T) {
	catalog := models.Catalog{
		Countries: []models.Country{{Name: "Monaco"}},
	}
	svc := newSearchService(catalog)

	got, err := svc.Search("monaco")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", destinationNames(got))
	}
}

func TestSearch_FallbackMatchesNameAndDescription(t *testing.T) {
	catalog := testCatalog()
	catalog.Beaches = append(catalog.Beaches, models.Destination{Name: "Sydney Opera House", Description: "Iconic"})
	svc := newSearchService(catalog)

	got, err := svc.Search("sydney")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, got, "Sydney Opera House")

	// Description "Iconic" does not contain "opera"; only the name matched above.
	got, err = svc.Search("opera")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, got, "Sydney Opera House")

	got, err = svc.Search("iconic")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, got, "Sydney Opera House")
}

func TestSearch_FallbackPreservesEnumerationOrder(t *testing.T) {
	catalog := models.Catalog{
		Temples:   []models.Destination{{Name: "Kyoto Shrine"}},
		Beaches:   []models.Destination{{Name: "Kyoto Bay", Description: "Quiet cove"}},
		Countries: []models.Country{{Name: "Japan", Cities: []models.Destination{{Name: "West Kyoto"}}}},
	}
	svc := newSearchService(catalog)

	got, err := svc.Search("kyoto")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, got, "Kyoto Shrine", "Kyoto Bay", "West Kyoto")
}

func TestSearch_FallbackTreatsAbsentFieldsAsEmpty(t *testing.T) {
	catalog := models.Catalog{
		Beaches: []models.Destination{{Description: "hidden gem"}, {Name: "Nameless Cove"}},
	}
	svc := newSearchService(catalog)

	got, err := svc.Search("hidden")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].Description != "hidden gem" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSearch_NoMatchesIsEmptyNotError(t *testing.T) {
	svc := newSearchService(testCatalog())

	got, err := svc.Search("atlantis")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", destinationNames(got))
	}
}

func TestSearch_DeterministicOrdering(t *testing.T) {
	svc := newSearchService(testCatalog())

	first, err := svc.Search("o")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := svc.Search("o")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	assertNames(t, second, destinationNames(first)...)
}

func TestSearch_UnreadyCatalogIsGated(t *testing.T) {
	svc := NewSearchService(zap.NewNop(), &providerMock{ready: false})

	_, err := svc.Search("japan")
	if !errors.Is(err, derr.ErrCatalogNotLoaded) {
		t.Fatalf("expected ErrCatalogNotLoaded, got %v", err)
	}
}
