package inventory

import (
	"context"
	"time"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// RepairUseCase consulta y cierre de seguimientos de reparación. El alta la
// hace RegisterMovementUseCase al registrar un Envío a Reparación; el regreso
// de las unidades al stock se registra con un movimiento aparte.
type RepairUseCase struct {
	repairRepo repository.RepairRepository
}

// NewRepairUseCase construye el caso de uso de reparaciones.
func NewRepairUseCase(repairRepo repository.RepairRepository) *RepairUseCase {
	return &RepairUseCase{repairRepo: repairRepo}
}

// List lista seguimientos de reparación; onlyOpen limita a los que todavía no
// regresaron.
func (uc *RepairUseCase) List(ctx context.Context, search string, onlyOpen bool, limit, offset int) ([]*entity.Repair, error) {
	return uc.repairRepo.List(search, onlyOpen, limit, offset)
}

// Close marca un seguimiento como regresado.
func (uc *RepairUseCase) Close(ctx context.Context, id string) (*entity.Repair, error) {
	repair, err := uc.repairRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if repair == nil {
		return nil, domain.ErrNotFound
	}
	if repair.ReturnedAt != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	if err := uc.repairRepo.Close(id, now); err != nil {
		return nil, err
	}
	repair.ReturnedAt = &now
	return repair, nil
}
