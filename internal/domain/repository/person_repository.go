package repository

import "github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"

// PersonFilter filtros del directorio de personas (estilo obtenerDatos: una
// búsqueda por substring más filtros exactos opcionales).
type PersonFilter struct {
	Search   string
	ClassID  string
	Category string
	Limit    int
	Offset   int
}

// PersonRepository define el puerto del directorio de personas.
type PersonRepository interface {
	Create(p *entity.Person) error
	GetByID(id string) (*entity.Person, error)
	// GetByNameAndClass busca por nombre exacto dentro de una clase. Se usa
	// para detectar duplicados al dar de alta.
	GetByNameAndClass(name, classID string) (*entity.Person, error)
	Update(p *entity.Person) error
	Delete(id string) error
	List(f PersonFilter) ([]*entity.Person, error)
	// HasDependents indica si la persona tiene movimientos o turnos
	// relacionados.
	HasDependents(id string) (bool, error)
}

// UserRepository define el puerto de persistencia para credenciales de acceso.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdatePassword(id, passwordHash string) error
}
