package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

var _ repository.RepairRepository = (*RepairRepo)(nil)

// RepairRepo implementación de RepairRepository sobre PostgreSQL.
type RepairRepo struct {
	q Querier
}

func NewRepairRepository(q Querier) *RepairRepo {
	return &RepairRepo{q: q}
}

func (r *RepairRepo) Create(rep *entity.Repair) error {
	query := `
		INSERT INTO reparaciones (id, id_elem, id_mov, cant, fecha_envio, fecha_regreso, notas)
		VALUES ($1, $2, $3, $4, $5, NULL, $6)`
	_, err := r.q.Exec(context.Background(), query,
		rep.ID, rep.StockItemID, rep.MovementID, rep.Quantity, rep.SentAt, rep.Notes)
	if err != nil {
		return fmt.Errorf("create repair: %w", err)
	}
	return nil
}

func (r *RepairRepo) GetByID(id string) (*entity.Repair, error) {
	query := `
		SELECT id, id_elem, id_mov, cant, fecha_envio, fecha_regreso, notas
		FROM reparaciones WHERE id = $1`
	var rep entity.Repair
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rep.ID, &rep.StockItemID, &rep.MovementID, &rep.Quantity,
		&rep.SentAt, &rep.ReturnedAt, &rep.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get repair: %w", err)
	}
	return &rep, nil
}

// Close marca la reparación como devuelta. Sólo aplica sobre reparaciones
// todavía abiertas.
func (r *RepairRepo) Close(id string, returnedAt time.Time) error {
	query := `UPDATE reparaciones SET fecha_regreso = $2 WHERE id = $1 AND fecha_regreso IS NULL`
	tag, err := r.q.Exec(context.Background(), query, id, returnedAt)
	if err != nil {
		return fmt.Errorf("close repair: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RepairRepo) List(search string, onlyOpen bool, limit, offset int) ([]*entity.Repair, error) {
	query := `
		SELECT rep.id, rep.id_elem, rep.id_mov, rep.cant, rep.fecha_envio, rep.fecha_regreso, rep.notas
		FROM reparaciones rep
		JOIN stock s ON s.id = rep.id_elem
		WHERE (s.descripcion ILIKE $1 OR rep.notas ILIKE $1)`
	args := []any{"%" + search + "%"}
	if onlyOpen {
		query += " AND rep.fecha_regreso IS NULL"
	}
	query += " ORDER BY rep.fecha_envio DESC LIMIT $2 OFFSET $3"
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list repairs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Repair
	for rows.Next() {
		var rep entity.Repair
		if err := rows.Scan(&rep.ID, &rep.StockItemID, &rep.MovementID, &rep.Quantity,
			&rep.SentAt, &rep.ReturnedAt, &rep.Notes); err != nil {
			return nil, fmt.Errorf("scan repair: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
