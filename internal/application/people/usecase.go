// Package people implementa el directorio de personas del taller: alumnos,
// personal y usuarios, con sus altas y bajas registradas en el historial.
package people

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/audit"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// UseCase casos de uso del directorio de personas.
type UseCase struct {
	personRepo  repository.PersonRepository
	catalogRepo repository.CatalogRepository
	auditUC     *audit.UseCase
}

// NewUseCase construye el caso de uso del directorio.
func NewUseCase(personRepo repository.PersonRepository, catalogRepo repository.CatalogRepository, auditUC *audit.UseCase) *UseCase {
	return &UseCase{personRepo: personRepo, catalogRepo: catalogRepo, auditUC: auditUC}
}

// PersonInput entrada para crear o editar una persona.
type PersonInput struct {
	Name    string
	DNI     string
	ClassID string
}

// Create inserta una persona y registra la inserción en la gestión que
// corresponde a la categoría de su clase.
func (uc *UseCase) Create(ctx context.Context, actorID string, in PersonInput) (*entity.Person, error) {
	if in.Name == "" || in.ClassID == "" {
		return nil, domain.ErrInvalidInput
	}
	class, err := uc.catalogRepo.GetClassByID(in.ClassID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	person := &entity.Person{
		ID:        uuid.New().String(),
		Name:      in.Name,
		DNI:       in.DNI,
		ClassID:   in.ClassID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.personRepo.Create(person); err != nil {
		return nil, err
	}
	kind := auditKindFor(class)
	if err := uc.auditUC.Append(ctx, actorID, entity.AuditOpInsert, kind, person.Name,
		nil, []string{class.Description, person.DNI}); err != nil {
		return nil, err
	}
	return person, nil
}

// Delete elimina una persona si no tiene movimientos ni turnos relacionados.
func (uc *UseCase) Delete(ctx context.Context, actorID, id string) error {
	person, err := uc.personRepo.GetByID(id)
	if err != nil {
		return err
	}
	if person == nil {
		return domain.ErrPersonNotFound
	}
	hasDeps, err := uc.personRepo.HasDependents(id)
	if err != nil {
		return err
	}
	if hasDeps {
		return domain.ErrReferentialBlock
	}
	class, err := uc.catalogRepo.GetClassByID(person.ClassID)
	if err != nil {
		return err
	}
	classLabel := ""
	if class != nil {
		classLabel = class.Description
	}
	if err := uc.auditUC.Append(ctx, actorID, entity.AuditOpDelete, auditKindFor(class), person.Name,
		[]string{classLabel, person.DNI}, nil); err != nil {
		return err
	}
	return uc.personRepo.Delete(id)
}

// Get devuelve una persona por id.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Person, error) {
	person, err := uc.personRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound
	}
	return person, nil
}

// List busca personas por substring con filtros de clase y categoría.
func (uc *UseCase) List(ctx context.Context, f repository.PersonFilter) ([]*entity.Person, error) {
	return uc.personRepo.List(f)
}

// auditKindFor mapea la categoría de la clase a la gestión del historial.
func auditKindFor(class *entity.Class) string {
	if class != nil && class.Category == entity.CategoryAlumnos {
		return entity.AuditKindStudents
	}
	return entity.AuditKindStaff
}
