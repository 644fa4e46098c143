package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItemRequest body para crear o editar una herramienta/insumo.
type StockItemRequest struct {
	Description string          `json:"description"`
	QtyGood     decimal.Decimal `json:"qty_good"`
	QtyRepair   decimal.Decimal `json:"qty_repair"`
	QtyRetired  decimal.Decimal `json:"qty_retired"`
	QtyLoaned   decimal.Decimal `json:"qty_loaned"`
	SubgroupID  string          `json:"subgroup_id"`
	LocationID  string          `json:"location_id"`
}

// StockItemResponse herramienta/insumo con sus contadores y el total.
type StockItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	QtyGood     decimal.Decimal `json:"qty_good"`
	QtyRepair   decimal.Decimal `json:"qty_repair"`
	QtyRetired  decimal.Decimal `json:"qty_retired"`
	QtyLoaned   decimal.Decimal `json:"qty_loaned"`
	Total       decimal.Decimal `json:"total"`
	SubgroupID  string          `json:"subgroup_id"`
	LocationID  string          `json:"location_id"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
