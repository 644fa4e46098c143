package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación de ShiftRepository sobre PostgreSQL (usable con
// pool o tx).
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador de turnos. Pasar pool o tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

const shiftColumns = `id, id_panolero, fecha_ing, fecha_egr, id_prof_egr`

func scanShift(row pgx.Row) (*entity.Shift, error) {
	var s entity.Shift
	if err := row.Scan(&s.ID, &s.AttendantID, &s.EntryTime, &s.ExitTime, &s.ClosedBy); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserta un turno abierto.
func (r *ShiftRepo) Create(s *entity.Shift) error {
	query := `
		INSERT INTO turnos (id, id_panolero, fecha_ing, fecha_egr, id_prof_egr)
		VALUES ($1, $2, $3, NULL, NULL)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.AttendantID, s.EntryTime)
	if err != nil {
		return fmt.Errorf("create shift: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por id, o nil si no existe.
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM turnos WHERE id = $1`
	s, err := scanShift(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return s, nil
}

// GetOpen devuelve el turno con fecha de egreso nula, o nil si no hay.
func (r *ShiftRepo) GetOpen() (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM turnos WHERE fecha_egr IS NULL`
	s, err := scanShift(r.q.QueryRow(context.Background(), query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open shift: %w", err)
	}
	return s, nil
}

// GetOpenForUpdate como GetOpen pero bloqueando la fila (SELECT FOR UPDATE).
func (r *ShiftRepo) GetOpenForUpdate() (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM turnos WHERE fecha_egr IS NULL FOR UPDATE`
	s, err := scanShift(r.q.QueryRow(context.Background(), query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open shift for update: %w", err)
	}
	return s, nil
}

// Close fija la fecha de egreso y el usuario que cierra.
func (r *ShiftRepo) Close(id string, exitTime time.Time, closedBy string) error {
	query := `UPDATE turnos SET fecha_egr = $2, id_prof_egr = $3 WHERE id = $1 AND fecha_egr IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id, exitTime, closedBy)
	if err != nil {
		return fmt.Errorf("close shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("close shift: turno %s no está abierto", id)
	}
	return nil
}

// List lista turnos con búsqueda por substring sobre el pañolero y rango de
// fechas de ingreso.
func (r *ShiftRepo) List(search string, from, to *time.Time, limit, offset int) ([]*entity.Shift, error) {
	query := `
		SELECT t.id, t.id_panolero, t.fecha_ing, t.fecha_egr, t.id_prof_egr
		FROM turnos t
		JOIN personal p ON p.id = t.id_panolero
		WHERE p.nombre_apellido ILIKE $1`
	args := []any{"%" + search + "%"}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND t.fecha_ing >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND t.fecha_ing <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY t.fecha_ing DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.AttendantID, &s.EntryTime, &s.ExitTime, &s.ClosedBy); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
