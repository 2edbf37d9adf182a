package repository

import (
	"context"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
)

// ProductRepository reads the catalog. All rows come from external ingestion;
// nothing here mutates them.
type ProductRepository interface {
	// List returns products ordered by id, skipping offset rows and returning
	// at most limit rows. An out-of-range offset yields an empty slice.
	List(ctx context.Context, offset, limit int) ([]model.Product, error)

	// ListAll returns every product ordered by id.
	ListAll(ctx context.Context) ([]model.Product, error)
}
