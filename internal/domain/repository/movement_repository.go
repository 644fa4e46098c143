package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
)

// DebtGroupBy indica el sujeto por el que se agrupan las deudas.
type DebtGroupBy string

const (
	DebtByTool   DebtGroupBy = "herramienta"
	DebtByPerson DebtGroupBy = "persona"
)

// DebtRow es el saldo pendiente de devolución de una herramienta para una
// persona: préstamos menos devoluciones sobre el historial de movimientos.
type DebtRow struct {
	StockItemID     string
	ItemDescription string
	PersonID        string
	PersonName      string
	ClassLabel      string
	Quantity        decimal.Decimal
}

// DebtFilter filtros del listado de deudas. MovementID limita el cálculo a
// un movimiento puntual.
type DebtFilter struct {
	Search      string
	MovementID  string
	ShiftID     string
	AttendantID string
}

// MovementFilter filtros del listado de movimientos.
type MovementFilter struct {
	Search      string
	StockItemID string
	PersonID    string
	ShiftID     string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// MovementRepository define el puerto de persistencia de movimientos.
// Los movimientos son inmutables: solo hay inserción y lectura.
type MovementRepository interface {
	Create(m *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(f MovementFilter) ([]*entity.Movement, error)
	// ListDebts devuelve los saldos prestados-y-no-devueltos por herramienta
	// y persona, ordenados por el sujeto de agrupación. El agregador cuenta
	// con ese orden para plegar filas consecutivas del mismo sujeto.
	ListDebts(groupBy DebtGroupBy, f DebtFilter) ([]*DebtRow, error)
}
