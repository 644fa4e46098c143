package audit

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	domaudit "github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/audit"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// UseCase maneja el historial de gestiones: escritura append-only y lectura
// con renderizado de descripciones.
type UseCase struct {
	auditRepo repository.AuditRepository
}

// NewUseCase construye el caso de uso del historial.
func NewUseCase(auditRepo repository.AuditRepository) *UseCase {
	return &UseCase{auditRepo: auditRepo}
}

// Append registra una entrada del historial. Escritura pura: solo exige actor
// y gestión; los snapshots pueden ser vacíos según la operación.
func (uc *UseCase) Append(ctx context.Context, actorID, operation, kind, label string, oldValues, newValues []string) error {
	if actorID == "" || kind == "" {
		return domain.ErrInvalidInput
	}
	entry := &entity.AuditEntry{
		ID:          uuid.New().String(),
		Timestamp:   time.Now(),
		ActorID:     actorID,
		Kind:        kind,
		Operation:   operation,
		EntityLabel: label,
		OldValues:   strings.Join(oldValues, ";"),
		NewValues:   strings.Join(newValues, ";"),
	}
	return uc.auditRepo.Create(entry)
}

// RenderedEntry es una entrada del historial con su descripción generada.
type RenderedEntry struct {
	Entry       *entity.AuditEntry
	Description string
}

// List devuelve el historial filtrado, renderizando cada descripción al leer.
// La búsqueda por substring se aplica sobre los campos visibles, incluida la
// descripción renderizada, como en la pantalla de historial.
func (uc *UseCase) List(ctx context.Context, f repository.AuditFilter, search string) ([]*RenderedEntry, error) {
	entries, err := uc.auditRepo.List(f)
	if err != nil {
		return nil, err
	}
	rendered := make([]*RenderedEntry, 0, len(entries))
	for _, e := range entries {
		desc, err := domaudit.Render(e)
		if err != nil {
			return nil, err
		}
		if search != "" && !matches(e, desc, search) {
			continue
		}
		rendered = append(rendered, &RenderedEntry{Entry: e, Description: desc})
	}
	return rendered, nil
}

// La búsqueda no distingue mayúsculas, como los ILIKE del resto de los
// listados.
func matches(e *entity.AuditEntry, desc, search string) bool {
	search = strings.ToLower(search)
	for _, field := range []string{e.Kind, e.Operation, e.EntityLabel, e.ActorID, desc} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
