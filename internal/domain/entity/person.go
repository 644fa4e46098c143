package entity

import "time"

// Categorías de clases del directorio de personas.
const (
	CategoryAlumnos  = "Alumnos"
	CategoryPersonal = "Personal"
	CategoryUsuarios = "Usuarios"
)

// ClassDirector es la clase con permisos de administración sobre las gestiones.
const ClassDirector = "Director de Taller"

// Person representa a una persona del directorio: alumno, personal del taller
// o usuario del sistema, según la categoría de su clase.
type Person struct {
	ID        string
	Name      string // nombre y apellido
	DNI       string
	ClassID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Class agrupa personas (un curso para alumnos, un rol para el personal).
type Class struct {
	ID          string
	Description string
	Category    string // Alumnos, Personal, Usuarios
}

// User es una persona con credenciales de acceso al sistema.
type User struct {
	ID           string
	PersonID     string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Class        string // clase de la persona; "Director de Taller" administra
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
