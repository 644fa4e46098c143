package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
)

// StockItem representa una herramienta o insumo del pañol, con la cantidad
// repartida en cuatro contadores por estado de condición. Las cantidades son
// decimales porque los insumos pueden medirse en unidades fraccionarias
// (metros de cable, kilos de electrodos).
type StockItem struct {
	ID          string
	Description string
	QtyGood     decimal.Decimal // cant_condiciones
	QtyRepair   decimal.Decimal // cant_reparacion
	QtyRetired  decimal.Decimal // cant_baja
	QtyLoaned   decimal.Decimal // cant_prest
	SubgroupID  string
	LocationID  string
	UpdatedAt   time.Time
}

// Qty devuelve la cantidad del contador correspondiente al estado.
func (s *StockItem) Qty(state StockState) decimal.Decimal {
	switch state {
	case StateGood:
		return s.QtyGood
	case StateRepair:
		return s.QtyRepair
	case StateRetired:
		return s.QtyRetired
	case StateLoaned:
		return s.QtyLoaned
	}
	return decimal.Zero
}

func (s *StockItem) setQty(state StockState, qty decimal.Decimal) {
	switch state {
	case StateGood:
		s.QtyGood = qty
	case StateRepair:
		s.QtyRepair = qty
	case StateRetired:
		s.QtyRetired = qty
	case StateLoaned:
		s.QtyLoaned = qty
	}
}

// Adjust acredita (delta positivo) o debita (delta negativo) el contador del
// estado indicado. Un débito que dejaría el contador en negativo falla con
// ErrInsufficientStock sin modificar nada. La verificación es sobre el
// contador específico, no sobre el total.
func (s *StockItem) Adjust(state StockState, delta decimal.Decimal) error {
	if !state.Valid() {
		return domain.ErrInvalidInput
	}
	next := s.Qty(state).Add(delta)
	if next.IsNegative() {
		return domain.ErrInsufficientStock
	}
	s.setQty(state, next)
	return nil
}

// Total es la suma de los cuatro contadores.
func (s *StockItem) Total() decimal.Decimal {
	return s.QtyGood.Add(s.QtyRepair).Add(s.QtyRetired).Add(s.QtyLoaned)
}
