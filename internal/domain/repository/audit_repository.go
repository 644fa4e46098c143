package repository

import (
	"time"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
)

// AuditFilter filtros del historial.
type AuditFilter struct {
	Kind   string // gestión exacta, vacío = todas
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// AuditRepository define el puerto del historial. Solo inserción y lectura:
// el historial nunca se edita.
type AuditRepository interface {
	Create(e *entity.AuditEntry) error
	List(f AuditFilter) ([]*entity.AuditEntry, error)
}
