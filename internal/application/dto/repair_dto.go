package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepairResponse un seguimiento de reparación.
type RepairResponse struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stock_item_id"`
	MovementID  string          `json:"movement_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	SentAt      time.Time       `json:"sent_at"`
	ReturnedAt  *time.Time      `json:"returned_at,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}
