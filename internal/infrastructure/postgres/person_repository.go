package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

var _ repository.PersonRepository = (*PersonRepo)(nil)

// PersonRepo implementación de PersonRepository sobre PostgreSQL.
type PersonRepo struct {
	q Querier
}

func NewPersonRepository(q Querier) *PersonRepo {
	return &PersonRepo{q: q}
}

const personColumns = `id, nombre_apellido, dni, id_clase, created_at, updated_at`

func scanPerson(row pgx.Row) (*entity.Person, error) {
	var p entity.Person
	if err := row.Scan(&p.ID, &p.Name, &p.DNI, &p.ClassID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepo) Create(p *entity.Person) error {
	query := `
		INSERT INTO personal (id, nombre_apellido, dni, id_clase, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.DNI, p.ClassID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create person: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

func (r *PersonRepo) GetByID(id string) (*entity.Person, error) {
	query := `SELECT ` + personColumns + ` FROM personal WHERE id = $1`
	p, err := scanPerson(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

// GetByNameAndClass busca por nombre exacto dentro de una clase. Se usa para
// detectar duplicados al dar de alta.
func (r *PersonRepo) GetByNameAndClass(name, classID string) (*entity.Person, error) {
	query := `SELECT ` + personColumns + ` FROM personal WHERE nombre_apellido = $1 AND id_clase = $2`
	p, err := scanPerson(r.q.QueryRow(context.Background(), query, name, classID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person by name: %w", err)
	}
	return p, nil
}

func (r *PersonRepo) Update(p *entity.Person) error {
	query := `
		UPDATE personal
		SET nombre_apellido = $2, dni = $3, id_clase = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.DNI, p.ClassID, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPersonNotFound
	}
	return nil
}

func (r *PersonRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM personal WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPersonNotFound
	}
	return nil
}

// List filtra por substring del nombre o DNI, clase puntual y categoría de la
// clase (Alumnos, Personal, Usuarios).
func (r *PersonRepo) List(f repository.PersonFilter) ([]*entity.Person, error) {
	query := `
		SELECT p.id, p.nombre_apellido, p.dni, p.id_clase, p.created_at, p.updated_at
		FROM personal p
		JOIN clases c ON c.id = p.id_clase
		WHERE (p.nombre_apellido ILIKE $1 OR p.dni ILIKE $1)`
	args := []any{"%" + f.Search + "%"}
	pos := 2
	if f.ClassID != "" {
		query += fmt.Sprintf(" AND p.id_clase = $%d", pos)
		args = append(args, f.ClassID)
		pos++
	}
	if f.Category != "" {
		query += fmt.Sprintf(" AND c.categoria = $%d", pos)
		args = append(args, f.Category)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY p.nombre_apellido LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()
	var list []*entity.Person
	for rows.Next() {
		var p entity.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.DNI, &p.ClassID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// HasDependents indica si la persona figura en movimientos o turnos.
func (r *PersonRepo) HasDependents(id string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM movimientos WHERE id_persona = $1)
			OR EXISTS (SELECT 1 FROM turnos WHERE id_panolero = $1)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check person dependents: %w", err)
	}
	return exists, nil
}

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, id_persona, usuario, contrasena_hash, clase, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.PersonID, &u.Username, &u.PasswordHash, &u.Class, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO usuarios (id, id_persona, usuario, contrasena_hash, clase, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.PersonID, u.Username, u.PasswordHash, u.Class, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create user: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE usuario = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

func (r *UserRepo) UpdatePassword(id, passwordHash string) error {
	query := `UPDATE usuarios SET contrasena_hash = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
