package model

import "time"

// Inventory is the on-hand quantity for one product, one row per
// product/location. Rows are written by external ingestion only.
type Inventory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"column:produto_id;not null;index" json:"produto_id"`
	Quantity  int64     `gorm:"column:quantidade;not null" json:"quantidade"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao;not null" json:"data_atualizacao"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Inventory) TableName() string {
	return "estoque"
}
