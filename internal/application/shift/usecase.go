// Package shift implementa el registro de turnos de pañolero: apertura,
// cierre y consulta del turno abierto. La apertura y el cierre corren dentro
// de una transacción para sostener el invariante de un solo turno abierto.
package shift

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// TxRunner ejecuta una función con un ShiftRepository atado a una transacción.
type TxRunner interface {
	RunShift(ctx context.Context, fn func(shiftRepo repository.ShiftRepository) error) error
}

// UseCase casos de uso de turnos.
type UseCase struct {
	txRunner   TxRunner
	shiftRepo  repository.ShiftRepository
	personRepo repository.PersonRepository
}

// NewUseCase construye el caso de uso de turnos.
func NewUseCase(txRunner TxRunner, shiftRepo repository.ShiftRepository, personRepo repository.PersonRepository) *UseCase {
	return &UseCase{txRunner: txRunner, shiftRepo: shiftRepo, personRepo: personRepo}
}

// OpenShift abre un turno para el pañolero indicado. Falla con
// ErrShiftAlreadyOpen si ya hay un turno sin finalizar; la verificación y la
// inserción corren en la misma transacción, y el runner serializa las
// transacciones de turnos entre sí para que dos aperturas concurrentes no
// pasen la verificación a la vez.
func (uc *UseCase) OpenShift(ctx context.Context, attendantID string) (*entity.Shift, error) {
	attendant, err := uc.personRepo.GetByID(attendantID)
	if err != nil {
		return nil, err
	}
	if attendant == nil {
		return nil, domain.ErrPersonNotFound
	}

	shift := &entity.Shift{
		ID:          uuid.New().String(),
		AttendantID: attendantID,
		EntryTime:   time.Now(),
	}
	err = uc.txRunner.RunShift(ctx, func(shiftRepo repository.ShiftRepository) error {
		open, err := shiftRepo.GetOpenForUpdate()
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrShiftAlreadyOpen
		}
		return shiftRepo.Create(shift)
	})
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// CloseShift finaliza el turno abierto atribuyendo el cierre al usuario
// indicado (en el flujo de login, quien decide finalizar un turno que quedó
// abierto). Falla con ErrShiftNotFound si no hay turno abierto.
func (uc *UseCase) CloseShift(ctx context.Context, closingUserID string) (*entity.Shift, error) {
	var closed *entity.Shift
	err := uc.txRunner.RunShift(ctx, func(shiftRepo repository.ShiftRepository) error {
		open, err := shiftRepo.GetOpenForUpdate()
		if err != nil {
			return err
		}
		if open == nil {
			return domain.ErrShiftNotFound
		}
		now := time.Now()
		if err := shiftRepo.Close(open.ID, now, closingUserID); err != nil {
			return err
		}
		open.ExitTime = &now
		open.ClosedBy = &closingUserID
		closed = open
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// CurrentOpenShift devuelve el turno abierto, o nil si no hay ninguno.
func (uc *UseCase) CurrentOpenShift(ctx context.Context) (*entity.Shift, error) {
	return uc.shiftRepo.GetOpen()
}

// List lista turnos con búsqueda por substring y rango de fechas.
func (uc *UseCase) List(ctx context.Context, search string, from, to *time.Time, limit, offset int) ([]*entity.Shift, error) {
	return uc.shiftRepo.List(search, from, to, limit, offset)
}
