package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the dashboard's view of the API. It only issues GETs and decodes
// JSON arrays.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Row shapes mirror the API contract.

type ProductRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Category string `json:"categoria"`
}

type SaleRow struct {
	ID         int64   `json:"id"`
	ProductID  int64   `json:"produto_id"`
	Store      string  `json:"loja"`
	Quantity   int64   `json:"quantidade"`
	TotalValue float64 `json:"valor_total"`
	SoldAt     string  `json:"data_venda"`
}

type CategorySalesRow struct {
	Category string  `json:"categoria"`
	Total    float64 `json:"total_vendas"`
}

type ABCCurveRow struct {
	Name              string   `json:"produto"`
	Total             float64  `json:"total_vendas"`
	CumulativePercent *float64 `json:"percentual_acumulado"`
}

type ProfitMarginRow struct {
	Name   string   `json:"produto"`
	Margin *float64 `json:"margem"`
}

type TopSellingRow struct {
	Name  string `json:"produto"`
	Units int64  `json:"total_vendido"`
}

type LowStockRow struct {
	ProductID int64  `json:"produto_id"`
	Name      string `json:"nome"`
	Quantity  int64  `json:"quantidade"`
	MinStock  int64  `json:"estoque_minimo"`
}

// SaleParams narrows /vendas, same names as the query string.
type SaleParams struct {
	Store    string
	Category string
	From     string // data_inicio
	To       string // data_fim
}

func (c *Client) Products(ctx context.Context) ([]ProductRow, error) {
	var out []ProductRow
	err := c.get(ctx, "/produtos", nil, &out)
	return out, err
}

func (c *Client) Sales(ctx context.Context, p SaleParams) ([]SaleRow, error) {
	params := url.Values{}
	if p.Store != "" {
		params.Set("loja", p.Store)
	}
	if p.Category != "" {
		params.Set("categoria", p.Category)
	}
	if p.From != "" {
		params.Set("data_inicio", p.From)
	}
	if p.To != "" {
		params.Set("data_fim", p.To)
	}

	var out []SaleRow
	err := c.get(ctx, "/vendas", params, &out)
	return out, err
}

func (c *Client) SalesByCategory(ctx context.Context) ([]CategorySalesRow, error) {
	var out []CategorySalesRow
	err := c.get(ctx, "/analytics/vendas-categoria", nil, &out)
	return out, err
}

func (c *Client) ABCCurve(ctx context.Context) ([]ABCCurveRow, error) {
	var out []ABCCurveRow
	err := c.get(ctx, "/analytics/curva-abc", nil, &out)
	return out, err
}

func (c *Client) ProfitMargin(ctx context.Context) ([]ProfitMarginRow, error) {
	var out []ProfitMarginRow
	err := c.get(ctx, "/analytics/margem-lucro", nil, &out)
	return out, err
}

func (c *Client) TopSelling(ctx context.Context, limit int) ([]TopSellingRow, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var out []TopSellingRow
	err := c.get(ctx, "/analytics/mais-vendidos", params, &out)
	return out, err
}

func (c *Client) LowStock(ctx context.Context) ([]LowStockRow, error) {
	var out []LowStockRow
	err := c.get(ctx, "/alertas/ruptura", nil, &out)
	return out, err
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
