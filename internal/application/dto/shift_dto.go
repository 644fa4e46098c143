package dto

import "time"

// OpenShiftRequest body para POST /api/shifts.
type OpenShiftRequest struct {
	AttendantID string `json:"attendant_id"`
}

// ShiftResponse un turno con sus tiempos de ingreso y egreso.
type ShiftResponse struct {
	ID          string     `json:"id"`
	AttendantID string     `json:"attendant_id"`
	EntryTime   time.Time  `json:"entry_time"`
	ExitTime    *time.Time `json:"exit_time,omitempty"`
	ClosedBy    *string    `json:"closed_by,omitempty"`
	Open        bool       `json:"open"`
}
