package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// View is everything the dashboard page renders. Each panel is fetched
// independently: a failed fetch fills that panel's Warning and the rest of the
// page still renders.
type View struct {
	GeneratedAt time.Time

	Stores     []string
	Categories []string

	CategorySales CategorySalesPanel
	ABCCurve      ABCCurvePanel
	ProfitMargin  ProfitMarginPanel
	TopSelling    TopSellingPanel
	LowStock      LowStockPanel
}

type CategorySalesPanel struct {
	Rows    []CategorySalesRow
	Warning string
}

type ABCCurvePanel struct {
	Rows    []ABCCurveRow
	Warning string
}

type ProfitMarginPanel struct {
	Rows    []ProfitMarginRow
	Warning string
}

type TopSellingPanel struct {
	Rows    []TopSellingRow
	Warning string
}

type LowStockPanel struct {
	Rows    []LowStockRow
	Warning string
}

// BuildView fetches every panel. It never returns an error: per-panel failure
// is non-fatal to the rest of the page.
func BuildView(ctx context.Context, c *Client) View {
	v := View{GeneratedAt: time.Now()}

	// filter lists are decoration, the page works without them
	if sales, err := c.Sales(ctx, SaleParams{}); err == nil {
		v.Stores = distinctStores(sales)
	}
	if products, err := c.Products(ctx); err == nil {
		v.Categories = distinctCategories(products)
	}

	if rows, err := c.SalesByCategory(ctx); err != nil {
		v.CategorySales.Warning = loadWarning(err)
	} else {
		v.CategorySales.Rows = rows
	}

	if rows, err := c.ABCCurve(ctx); err != nil {
		v.ABCCurve.Warning = loadWarning(err)
	} else {
		v.ABCCurve.Rows = rows
	}

	if rows, err := c.ProfitMargin(ctx); err != nil {
		v.ProfitMargin.Warning = loadWarning(err)
	} else {
		v.ProfitMargin.Rows = rows
	}

	if rows, err := c.TopSelling(ctx, 10); err != nil {
		v.TopSelling.Warning = loadWarning(err)
	} else {
		v.TopSelling.Rows = rows
	}

	if rows, err := c.LowStock(ctx); err != nil {
		v.LowStock.Warning = loadWarning(err)
	} else {
		v.LowStock.Rows = rows
	}

	return v
}

func loadWarning(err error) string {
	return fmt.Sprintf("Erro ao carregar dados: %v", err)
}

func distinctStores(sales []SaleRow) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range sales {
		if s.Store != "" && !seen[s.Store] {
			seen[s.Store] = true
			out = append(out, s.Store)
		}
	}
	sort.Strings(out)
	return out
}

func distinctCategories(products []ProductRow) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}
