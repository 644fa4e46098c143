package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, descripcion, cant_condiciones, cant_reparacion, cant_baja, cant_prest, id_subgrupo, id_ubi, updated_at`

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var s entity.StockItem
	err := row.Scan(
		&s.ID, &s.Description, &s.QtyGood, &s.QtyRepair,
		&s.QtyRetired, &s.QtyLoaned, &s.SubgroupID, &s.LocationID, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserta una herramienta/insumo.
func (r *StockRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock (id, descripcion, cant_condiciones, cant_reparacion, cant_baja, cant_prest, id_subgrupo, id_ubi, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Description, item.QtyGood, item.QtyRepair,
		item.QtyRetired, item.QtyLoaned, item.SubgroupID, item.LocationID, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock: %w", err)
	}
	return nil
}

// GetByID obtiene una herramienta/insumo por id, o nil si no existe.
func (r *StockRepo) GetByID(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = $1`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return item, nil
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = $1 FOR UPDATE`
	item, err := scanStockItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return item, nil
}

// Update escribe los contadores y campos de la fila.
func (r *StockRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock
		SET descripcion = $2, cant_condiciones = $3, cant_reparacion = $4,
		    cant_baja = $5, cant_prest = $6, id_subgrupo = $7, id_ubi = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Description, item.QtyGood, item.QtyRepair,
		item.QtyRetired, item.QtyLoaned, item.SubgroupID, item.LocationID, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Delete elimina la fila. La guarda referencial corre antes, en el caso de uso.
func (r *StockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

// List busca por substring en las columnas visibles (descripción, subgrupo,
// grupo, ubicación) con filtro exacto opcional de ubicación.
func (r *StockRepo) List(search, locationID string, limit, offset int) ([]*entity.StockItem, error) {
	query := `
		SELECT s.id, s.descripcion, s.cant_condiciones, s.cant_reparacion, s.cant_baja, s.cant_prest, s.id_subgrupo, s.id_ubi, s.updated_at
		FROM stock s
		JOIN subgrupos sub ON sub.id = s.id_subgrupo
		JOIN grupos g ON g.id = sub.id_grupo
		JOIN ubicaciones u ON u.id = s.id_ubi
		WHERE (s.descripcion ILIKE $1 OR sub.descripcion ILIKE $1 OR g.descripcion ILIKE $1 OR u.descripcion ILIKE $1)`
	args := []any{"%" + search + "%"}
	pos := 2
	if locationID != "" {
		query += fmt.Sprintf(" AND s.id_ubi = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY s.descripcion LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var s entity.StockItem
		if err := rows.Scan(&s.ID, &s.Description, &s.QtyGood, &s.QtyRepair,
			&s.QtyRetired, &s.QtyLoaned, &s.SubgroupID, &s.LocationID, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// HasDependents indica si el ítem tiene movimientos o seguimientos de
// reparación relacionados.
func (r *StockRepo) HasDependents(id string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM movimientos WHERE id_elem = $1)
		    OR EXISTS (SELECT 1 FROM reparaciones WHERE id_elem = $1)`
	var has bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&has); err != nil {
		return false, fmt.Errorf("check stock dependents: %w", err)
	}
	return has, nil
}
