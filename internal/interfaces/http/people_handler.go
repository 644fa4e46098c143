package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/people"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// PeopleHandler maneja el directorio de personas (protegido).
type PeopleHandler struct {
	uc *people.UseCase
}

// NewPeopleHandler construye el handler del directorio.
func NewPeopleHandler(uc *people.UseCase) *PeopleHandler {
	return &PeopleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear persona
// @Tags         people
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PersonRequest  true  "name, dni, class_id"
// @Success      201   {object}  dto.PersonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/people [post]
func (h *PeopleHandler) Create(c *fiber.Ctx) error {
	var in dto.PersonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	person, err := h.uc.Create(c.Context(), GetUserID(c), people.PersonInput{
		Name:    in.Name,
		DNI:     in.DNI,
		ClassID: in.ClassID,
	})
	if err != nil {
		return peopleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPersonResponse(person))
}

// Delete godoc
// @Summary      Eliminar persona
// @Description  Se bloquea si la persona figura en movimientos o turnos.
// @Tags         people
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/people/{id} [delete]
func (h *PeopleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return peopleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "persona eliminada"})
}

// GetByID godoc
// @Summary      Obtener persona
// @Tags         people
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.PersonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/people/{id} [get]
func (h *PeopleHandler) GetByID(c *fiber.Ctx) error {
	person, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return peopleError(c, err)
	}
	return c.JSON(toPersonResponse(person))
}

// List godoc
// @Summary      Listar personas
// @Tags         people
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Substring sobre nombre o DNI"
// @Param        class_id  query  string  false  "Filtrar por clase"
// @Param        category  query  string  false  "Filtrar por categoría: Alumnos, Personal, Usuarios"
// @Param        limit     query  int     false  "Límite (default 20)"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {array}  dto.PersonResponse
// @Router       /api/people [get]
func (h *PeopleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	list, err := h.uc.List(c.Context(), repository.PersonFilter{
		Search:   c.Query("search"),
		ClassID:  c.Query("class_id"),
		Category: c.Query("category"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.PersonResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPersonResponse(p))
	}
	return c.JSON(out)
}

func toPersonResponse(p *entity.Person) dto.PersonResponse {
	return dto.PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		DNI:       p.DNI,
		ClassID:   p.ClassID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func peopleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y class_id son requeridos"})
	case errors.Is(err, domain.ErrPersonNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CLASS_NOT_FOUND", Message: "la clase no existe"})
	case errors.Is(err, domain.ErrReferentialBlock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REFERENTIAL_BLOCK", Message: "tiene registros relacionados: elimínelos primero"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
