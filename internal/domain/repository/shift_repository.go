package repository

import (
	"time"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
)

// ShiftRepository define el puerto de persistencia de turnos.
type ShiftRepository interface {
	Create(s *entity.Shift) error
	GetByID(id string) (*entity.Shift, error)
	// GetOpen devuelve el turno con fecha de egreso nula, o nil si no hay.
	GetOpen() (*entity.Shift, error)
	// GetOpenForUpdate bloquea el turno abierto (SELECT FOR UPDATE) para
	// serializar aperturas y cierres concurrentes.
	GetOpenForUpdate() (*entity.Shift, error)
	Close(id string, exitTime time.Time, closedBy string) error
	List(search string, from, to *time.Time, limit, offset int) ([]*entity.Shift, error)
}
