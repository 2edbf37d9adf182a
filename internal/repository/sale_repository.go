package repository

import (
	"context"
	"time"

	"github.com/isafmcl/Integra-o-com-ERP/internal/domain/model"
)

// SaleFilter narrows a sale listing. Every field is optional and the filters
// combine with AND. Category matches the joined product, not the sale row.
// Date bounds are inclusive; a nil bound leaves that side open.
type SaleFilter struct {
	Store    string
	Category string
	From     *time.Time
	To       *time.Time
}

// SaleRepository reads sales. List is unbounded on purpose: callers paginate
// separately if they need to.
type SaleRepository interface {
	List(ctx context.Context, f SaleFilter) ([]model.Sale, error)
}
