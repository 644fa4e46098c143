package dto

import "time"

// AuditEntryResponse entrada del historial con su descripción renderizada.
type AuditEntryResponse struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	ActorID     string    `json:"actor_id"`
	Kind        string    `json:"kind"`
	Operation   string    `json:"operation"`
	EntityLabel string    `json:"entity_label"`
	Description string    `json:"description"`
}
