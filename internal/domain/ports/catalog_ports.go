package ports

import (
	"context"

	"github.com/roamly/roamly/internal/domain/models"
)

type CatalogSource interface {
	Fetch(ctx context.Context) (models.Catalog, error)
}

// CatalogProvider hands out the loaded catalog. The second return is the
// ready flag; callers must not search an unready catalog.
type CatalogProvider interface {
	Snapshot() (models.Catalog, bool)
}
