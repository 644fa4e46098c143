package postgres

import (
	"context"
	"fmt"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación de AuditRepository sobre PostgreSQL. El historial
// es de sólo inserción, nunca se edita ni se borra.
type AuditRepo struct {
	q Querier
}

func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

func (r *AuditRepo) Create(e *entity.AuditEntry) error {
	query := `
		INSERT INTO historial (id, fecha_hora, id_usuario, gestion, operacion, etiqueta, datos_viejos, datos_nuevos)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Timestamp, e.ActorID, e.Kind, e.Operation, e.EntityLabel, e.OldValues, e.NewValues)
	if err != nil {
		return fmt.Errorf("create audit entry: %w", err)
	}
	return nil
}

// List devuelve entradas ordenadas de la más reciente a la más vieja.
func (r *AuditRepo) List(f repository.AuditFilter) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, fecha_hora, id_usuario, gestion, operacion, etiqueta, datos_viejos, datos_nuevos
		FROM historial
		WHERE 1=1`
	var args []any
	pos := 1
	if f.Kind != "" {
		query += fmt.Sprintf(" AND gestion = $%d", pos)
		args = append(args, f.Kind)
		pos++
	}
	if f.From != nil {
		query += fmt.Sprintf(" AND fecha_hora >= $%d", pos)
		args = append(args, *f.From)
		pos++
	}
	if f.To != nil {
		query += fmt.Sprintf(" AND fecha_hora <= $%d", pos)
		args = append(args, *f.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha_hora DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.ActorID, &e.Kind, &e.Operation,
			&e.EntityLabel, &e.OldValues, &e.NewValues); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
