package inventory

import (
	"context"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// MovementQueryUseCase consultas de sólo lectura sobre el historial de
// movimientos.
type MovementQueryUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso de consulta.
func NewMovementQueryUseCase(movRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// Get devuelve un movimiento por id.
func (uc *MovementQueryUseCase) Get(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// List lista movimientos con búsqueda por substring y filtros exactos.
func (uc *MovementQueryUseCase) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	return uc.movRepo.List(f)
}
