package model

import (
	"github.com/shopspring/decimal"
)

// Product is one catalog item. Preco and custo are non-negative; margin is
// undefined when preco is zero.
type Product struct {
	ID       int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string          `gorm:"column:nome;type:varchar(100);not null" json:"nome"`
	Category string          `gorm:"column:categoria;type:varchar(50);not null;index" json:"categoria"`
	Price    decimal.Decimal `gorm:"column:preco;type:decimal(12,2);not null" json:"preco"`
	Cost     decimal.Decimal `gorm:"column:custo;type:decimal(12,2);not null" json:"custo"`
	MinStock int64           `gorm:"column:estoque_minimo;not null;default:0" json:"estoque_minimo"`
}

func (Product) TableName() string {
	return "produtos"
}
