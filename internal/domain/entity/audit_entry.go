package entity

import "time"

// Operaciones registradas en el historial.
const (
	AuditOpInsert = "Inserción"
	AuditOpEdit   = "Edición"
	AuditOpDelete = "Eliminación"
)

// Gestiones (tipos de entidad) que registran historial.
const (
	AuditKindStock     = "Stock"
	AuditKindGroups    = "Grupos"
	AuditKindSubgroups = "Subgrupos"
	AuditKindStudents  = "Alumnos"
	AuditKindStaff     = "Personal"
	AuditKindClasses   = "Clases"
	AuditKindLocations = "Ubicaciones"
)

// AuditEntry es una entrada inmutable del historial de gestiones. Los campos
// OldValues y NewValues son snapshots posicionales unidos por ';' que se
// interpretan recién al renderizar, nunca al escribir.
//
// Convención de snapshots por operación:
//
//	Inserción:   NewValues = campos del registro nuevo (sin la etiqueta)
//	Edición:     OldValues = campos anteriores; NewValues = etiqueta nueva + campos nuevos
//	Eliminación: OldValues = campos del registro eliminado
type AuditEntry struct {
	ID          string
	Timestamp   time.Time
	ActorID     string
	Kind        string // gestión: Stock, Grupos, ...
	Operation   string // Inserción, Edición, Eliminación
	EntityLabel string
	OldValues   string
	NewValues   string
}
