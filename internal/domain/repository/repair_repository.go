package repository

import (
	"time"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
)

// RepairRepository define el puerto de seguimientos de reparación.
type RepairRepository interface {
	Create(r *entity.Repair) error
	GetByID(id string) (*entity.Repair, error)
	Close(id string, returnedAt time.Time) error
	List(search string, onlyOpen bool, limit, offset int) ([]*entity.Repair, error)
}
