package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo agrupa las tablas de referencia: grupos, subgrupos, ubicaciones
// y clases.
type CatalogRepo struct {
	q Querier
}

func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func (r *CatalogRepo) ListGroups(search string) ([]*entity.Group, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, descripcion FROM grupos WHERE descripcion ILIKE $1 ORDER BY descripcion`,
		"%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.Group
	for rows.Next() {
		var g entity.Group
		if err := rows.Scan(&g.ID, &g.Description); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) ListSubgroups(search, groupID string) ([]*entity.Subgroup, error) {
	query := `SELECT id, descripcion, id_grupo FROM subgrupos WHERE descripcion ILIKE $1`
	args := []any{"%" + search + "%"}
	if groupID != "" {
		query += " AND id_grupo = $2"
		args = append(args, groupID)
	}
	query += " ORDER BY descripcion"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subgroups: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subgroup
	for rows.Next() {
		var s entity.Subgroup
		if err := rows.Scan(&s.ID, &s.Description, &s.GroupID); err != nil {
			return nil, fmt.Errorf("scan subgroup: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) ListLocations(search string) ([]*entity.Location, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, descripcion FROM ubicaciones WHERE descripcion ILIKE $1 ORDER BY descripcion`,
		"%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Description); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) ListClasses(search, category string) ([]*entity.Class, error) {
	query := `SELECT id, descripcion, categoria FROM clases WHERE descripcion ILIKE $1`
	args := []any{"%" + search + "%"}
	if category != "" {
		query += " AND categoria = $2"
		args = append(args, category)
	}
	query += " ORDER BY descripcion"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Class
	for rows.Next() {
		var c entity.Class
		if err := rows.Scan(&c.ID, &c.Description, &c.Category); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) GetGroupByID(id string) (*entity.Group, error) {
	var g entity.Group
	err := r.q.QueryRow(context.Background(),
		`SELECT id, descripcion FROM grupos WHERE id = $1`, id).Scan(&g.ID, &g.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

func (r *CatalogRepo) GetSubgroupByID(id string) (*entity.Subgroup, error) {
	var s entity.Subgroup
	err := r.q.QueryRow(context.Background(),
		`SELECT id, descripcion, id_grupo FROM subgrupos WHERE id = $1`, id).
		Scan(&s.ID, &s.Description, &s.GroupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subgroup: %w", err)
	}
	return &s, nil
}

func (r *CatalogRepo) GetLocationByID(id string) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(),
		`SELECT id, descripcion FROM ubicaciones WHERE id = $1`, id).Scan(&l.ID, &l.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

func (r *CatalogRepo) GetClassByID(id string) (*entity.Class, error) {
	var c entity.Class
	err := r.q.QueryRow(context.Background(),
		`SELECT id, descripcion, categoria FROM clases WHERE id = $1`, id).
		Scan(&c.ID, &c.Description, &c.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get class: %w", err)
	}
	return &c, nil
}
