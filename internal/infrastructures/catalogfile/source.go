package catalogfile

import (
	"context"
	"fmt"

	"github.com/roamly/roamly/internal/domain/models"
	"github.com/roamly/roamly/internal/infrastructures/catalogfile/http/client"
	"github.com/roamly/roamly/internal/infrastructures/catalogfile/mappers"
)

// Source adapts the document client to the domain CatalogSource port.
type Source struct {
	client *client.Client
}

func NewSource(client *client.Client) *Source {
	return &Source{
		client: client,
	}
}

func (s *Source) Fetch(ctx context.Context) (models.Catalog, error) {
	doc, err := s.client.GetDocument(ctx)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("get document: %w", err)
	}

	return mappers.ToDomainCatalog(doc), nil
}
