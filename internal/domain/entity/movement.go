package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
)

// MovementType identifica el tipo de movimiento. Los valores numéricos son
// los ids de la tabla tipos_mov y forman parte del registro histórico.
type MovementType int

const (
	MovementTypeLoad         MovementType = 1 // "Carga": alta de stock nuevo
	MovementTypeSendToRepair MovementType = 2 // "Envío a Reparación"
	MovementTypeLend         MovementType = 3 // "Préstamo"
	MovementTypeReturn       MovementType = 4 // "Devolución"
	MovementTypeWriteOff     MovementType = 5 // "Baja"
)

var movementTypeLabels = map[MovementType]string{
	MovementTypeLoad:         "Carga",
	MovementTypeSendToRepair: "Envío a Reparación",
	MovementTypeLend:         "Préstamo",
	MovementTypeReturn:       "Devolución",
	MovementTypeWriteOff:     "Baja",
}

func (t MovementType) String() string {
	if label, ok := movementTypeLabels[t]; ok {
		return label
	}
	return "Desconocido"
}

// Valid indica si el tipo es uno de los cinco movimientos conocidos.
func (t MovementType) Valid() bool {
	_, ok := movementTypeLabels[t]
	return ok
}

// ImplicitState devuelve el segundo estado que el tipo acredita o debita
// además del estado destino, o 0 si el tipo opera sobre un solo contador.
func (t MovementType) ImplicitState() StockState {
	switch t {
	case MovementTypeSendToRepair:
		return StateRepair
	case MovementTypeLend, MovementTypeReturn:
		return StateLoaned
	case MovementTypeWriteOff:
		return StateRetired
	}
	return 0
}

// Apply aplica sobre el ítem el par débito/crédito del tipo de movimiento:
//
//	Carga (1):               crédito(destino)
//	Envío a Reparación (2):  débito(destino) + crédito(reparación)
//	Préstamo (3):            débito(destino) + crédito(prestadas)
//	Devolución (4):          crédito(destino) + débito(prestadas)
//	Baja (5):                débito(destino) + crédito(baja)
//
// Cualquier débito insuficiente falla con ErrInsufficientStock y deja el ítem
// sin modificar. Para los tipos de dos contadores el destino no puede ser el
// estado implícito del tipo.
func (t MovementType) Apply(item *StockItem, target StockState, qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	if !target.Valid() {
		return domain.ErrInvalidInput
	}
	if implicit := t.ImplicitState(); implicit != 0 && implicit == target {
		return domain.ErrInvalidInput
	}

	before := *item
	var err error
	switch t {
	case MovementTypeLoad:
		err = item.Adjust(target, qty)
	case MovementTypeSendToRepair:
		if err = item.Adjust(target, qty.Neg()); err == nil {
			err = item.Adjust(StateRepair, qty)
		}
	case MovementTypeLend:
		if err = item.Adjust(target, qty.Neg()); err == nil {
			err = item.Adjust(StateLoaned, qty)
		}
	case MovementTypeReturn:
		if err = item.Adjust(target, qty); err == nil {
			err = item.Adjust(StateLoaned, qty.Neg())
		}
	case MovementTypeWriteOff:
		if err = item.Adjust(target, qty.Neg()); err == nil {
			err = item.Adjust(StateRetired, qty)
		}
	default:
		err = domain.ErrInvalidInput
	}
	if err != nil {
		*item = before
		return err
	}
	return nil
}

// Movement es el registro inmutable de un movimiento de stock. Nunca se
// actualiza ni elimina: es la traza de auditoría de los contadores.
type Movement struct {
	ID          string
	ShiftID     *string // nil cuando no había turno abierto al registrarlo
	StockItemID string
	State       StockState // estado destino resuelto
	Quantity    decimal.Decimal
	PersonID    string // solicitante (alumno o personal)
	Timestamp   time.Time
	Type        MovementType
	Description string
	RecordedBy  string // usuario que registró; responsable si ShiftID es nil
}
