package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one completed sale. ValorTotal is stored independently of the
// product's current preco (price at time of sale).
type Sale struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64           `gorm:"column:produto_id;not null;index" json:"produto_id"`
	Store      string          `gorm:"column:loja;type:varchar(50);not null" json:"loja"`
	Quantity   int64           `gorm:"column:quantidade;not null" json:"quantidade"`
	TotalValue decimal.Decimal `gorm:"column:valor_total;type:decimal(12,2);not null" json:"valor_total"`
	SoldAt     time.Time       `gorm:"column:data_venda;not null;index" json:"data_venda"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Sale) TableName() string {
	return "vendas"
}
