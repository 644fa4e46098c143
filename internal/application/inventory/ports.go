package inventory

import (
	"context"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: contadores, movimiento y seguimiento de reparación se
// confirman juntos o no se confirma nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		shiftRepo repository.ShiftRepository,
		repairRepo repository.RepairRepository,
	) error) error
}
