package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable
// con pool o tx). No hay Update ni Delete: los movimientos son inmutables.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, id_turno, id_elem, id_estado, cant, id_persona, fecha_hora, id_tipo, descripcion, id_usuario`

// Create persiste un movimiento.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movimientos (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ShiftID, m.StockItemID, int(m.State), m.Quantity,
		m.PersonID, m.Timestamp, int(m.Type), m.Description, m.RecordedBy,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var state, movType int
	err := row.Scan(&m.ID, &m.ShiftID, &m.StockItemID, &state, &m.Quantity,
		&m.PersonID, &m.Timestamp, &movType, &m.Description, &m.RecordedBy)
	if err != nil {
		return nil, err
	}
	m.State = entity.StockState(state)
	m.Type = entity.MovementType(movType)
	return &m, nil
}

// GetByID obtiene un movimiento por id, o nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movimientos WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos con búsqueda por substring y filtros exactos.
func (r *MovementRepo) List(f repository.MovementFilter) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.id_turno, m.id_elem, m.id_estado, m.cant, m.id_persona, m.fecha_hora, m.id_tipo, m.descripcion, m.id_usuario
		FROM movimientos m
		JOIN stock s ON s.id = m.id_elem
		JOIN personal p ON p.id = m.id_persona
		WHERE (s.descripcion ILIKE $1 OR p.nombre_apellido ILIKE $1 OR m.descripcion ILIKE $1)`
	args := []any{"%" + f.Search + "%"}
	pos := 2
	addFilter := func(cond string, value any) {
		query += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, value)
		pos++
	}
	if f.StockItemID != "" {
		addFilter("m.id_elem = $%d", f.StockItemID)
	}
	if f.PersonID != "" {
		addFilter("m.id_persona = $%d", f.PersonID)
	}
	if f.ShiftID != "" {
		addFilter("m.id_turno = $%d", f.ShiftID)
	}
	if f.From != nil {
		addFilter("m.fecha_hora >= $%d", *f.From)
	}
	if f.To != nil {
		addFilter("m.fecha_hora <= $%d", *f.To)
	}
	query += fmt.Sprintf(" ORDER BY m.fecha_hora DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var state, movType int
		if err := rows.Scan(&m.ID, &m.ShiftID, &m.StockItemID, &state, &m.Quantity,
			&m.PersonID, &m.Timestamp, &movType, &m.Description, &m.RecordedBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.State = entity.StockState(state)
		m.Type = entity.MovementType(movType)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListDebts calcula los saldos prestados-y-no-devueltos (préstamos menos
// devoluciones) por herramienta y persona, ordenados por el sujeto de
// agrupación. Los saldos cero o negativos se incluyen.
func (r *MovementRepo) ListDebts(groupBy repository.DebtGroupBy, f repository.DebtFilter) ([]*repository.DebtRow, error) {
	query := `
		SELECT s.id, s.descripcion, p.id, p.nombre_apellido, c.descripcion,
		       SUM(CASE m.id_tipo WHEN $1 THEN m.cant WHEN $2 THEN -m.cant END) AS deuda
		FROM movimientos m
		JOIN stock s ON s.id = m.id_elem
		JOIN personal p ON p.id = m.id_persona
		JOIN clases c ON c.id = p.id_clase
		WHERE m.id_tipo IN ($1, $2)
		  AND (s.descripcion ILIKE $3 OR p.nombre_apellido ILIKE $3 OR c.descripcion ILIKE $3)`
	args := []any{int(entity.MovementTypeLend), int(entity.MovementTypeReturn), "%" + f.Search + "%"}
	pos := 4
	if f.MovementID != "" {
		query += fmt.Sprintf(" AND m.id = $%d", pos)
		args = append(args, f.MovementID)
		pos++
	}
	if f.ShiftID != "" {
		query += fmt.Sprintf(" AND m.id_turno = $%d", pos)
		args = append(args, f.ShiftID)
		pos++
	}
	if f.AttendantID != "" {
		query += fmt.Sprintf(" AND m.id_turno IN (SELECT id FROM turnos WHERE id_panolero = $%d)", pos)
		args = append(args, f.AttendantID)
		pos++
	}
	query += ` GROUP BY s.id, s.descripcion, p.id, p.nombre_apellido, c.descripcion`
	if groupBy == repository.DebtByPerson {
		query += ` ORDER BY p.nombre_apellido, p.id, s.descripcion`
	} else {
		query += ` ORDER BY s.descripcion, s.id, p.nombre_apellido`
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	defer rows.Close()
	var list []*repository.DebtRow
	for rows.Next() {
		var d repository.DebtRow
		if err := rows.Scan(&d.StockItemID, &d.ItemDescription, &d.PersonID,
			&d.PersonName, &d.ClassLabel, &d.Quantity); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
