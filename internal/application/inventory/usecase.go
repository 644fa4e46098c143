package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (Carga, Envío a Reparación, Préstamo, Devolución, Baja) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner   TxRunner
	personRepo repository.PersonRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, personRepo repository.PersonRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, personRepo: personRepo}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	UserID      string // usuario que registra
	StockItemID string
	StateLabel  string // etiqueta del estado destino
	Quantity    decimal.Decimal
	PersonID    string // solicitante
	Type        entity.MovementType
	Description string
}

// RegisterMovement valida la entrada, inicia una transacción, bloquea la fila
// de stock, aplica el par débito/crédito del tipo y persiste el movimiento.
// El movimiento se atribuye al turno abierto; si no hay turno abierto queda
// atribuido directamente al usuario que lo registra.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if !input.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidInput
	}
	state, err := entity.ParseStateLabel(input.StateLabel)
	if err != nil {
		return nil, err
	}

	person, err := uc.personRepo.GetByID(input.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound
	}

	now := time.Now()
	var movement *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		shiftRepo repository.ShiftRepository,
		repairRepo repository.RepairRepository,
	) error {
		// Bloquea la fila de stock para evitar condiciones de carrera entre
		// puestos concurrentes.
		item, err := stockRepo.GetForUpdate(input.StockItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}

		if err := input.Type.Apply(item, state, input.Quantity); err != nil {
			return err
		}
		item.UpdatedAt = now
		if err := stockRepo.Update(item); err != nil {
			return err
		}

		var shiftID *string
		shift, err := shiftRepo.GetOpen()
		if err != nil {
			return err
		}
		if shift != nil {
			shiftID = &shift.ID
		}

		movement = &entity.Movement{
			ID:          uuid.New().String(),
			ShiftID:     shiftID,
			StockItemID: input.StockItemID,
			State:       state,
			Quantity:    input.Quantity,
			PersonID:    input.PersonID,
			Timestamp:   now,
			Type:        input.Type,
			Description: input.Description,
			RecordedBy:  input.UserID,
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}

		// Un envío a reparación abre su seguimiento en la misma transacción.
		if input.Type == entity.MovementTypeSendToRepair {
			repair := &entity.Repair{
				ID:          uuid.New().String(),
				StockItemID: input.StockItemID,
				MovementID:  movement.ID,
				Quantity:    input.Quantity,
				SentAt:      now,
				Notes:       input.Description,
			}
			if err := repairRepo.Create(repair); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}
