package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movements.
type RegisterMovementRequest struct {
	StockItemID string          `json:"stock_item_id"`
	State       string          `json:"state"` // etiqueta del estado destino
	Quantity    decimal.Decimal `json:"quantity"`
	PersonID    string          `json:"person_id"`
	Type        int             `json:"type"` // 1..5
	Description string          `json:"description,omitempty"`
}

// MovementResponse un movimiento registrado.
type MovementResponse struct {
	ID          string          `json:"id"`
	ShiftID     *string         `json:"shift_id,omitempty"`
	StockItemID string          `json:"stock_item_id"`
	State       string          `json:"state"`
	Quantity    decimal.Decimal `json:"quantity"`
	PersonID    string          `json:"person_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Type        int             `json:"type"`
	TypeLabel   string          `json:"type_label"`
	Description string          `json:"description,omitempty"`
	RecordedBy  string          `json:"recorded_by"`
}
