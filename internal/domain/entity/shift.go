package entity

import "time"

// Shift representa un turno de pañolero: el período en que una persona queda
// responsable de registrar movimientos. ExitTime en nil significa turno
// abierto; el flujo garantiza a lo sumo un turno abierto a la vez.
type Shift struct {
	ID          string
	AttendantID string // pañolero de turno
	EntryTime   time.Time
	ExitTime    *time.Time
	ClosedBy    *string // usuario que finalizó el turno
}

// Open indica si el turno sigue abierto.
func (s *Shift) Open() bool {
	return s.ExitTime == nil
}
