package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Repair es el seguimiento de una cantidad enviada a reparación. Se abre al
// registrar un movimiento de Envío a Reparación y se cierra al volver.
type Repair struct {
	ID          string
	StockItemID string
	MovementID  string
	Quantity    decimal.Decimal
	SentAt      time.Time
	ReturnedAt  *time.Time
	Notes       string
}
