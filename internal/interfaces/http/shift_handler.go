package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/shift"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
)

// ShiftHandler maneja el registro de turnos de pañolero (protegido).
type ShiftHandler struct {
	uc *shift.UseCase
}

// NewShiftHandler construye el handler de turnos.
func NewShiftHandler(uc *shift.UseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir turno
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenShiftRequest  true  "attendant_id"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shifts [post]
func (h *ShiftHandler) Open(c *fiber.Ctx) error {
	var in dto.OpenShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.AttendantID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "attendant_id es requerido"})
	}
	s, err := h.uc.OpenShift(c.Context(), in.AttendantID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPersonNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PERSON_NOT_FOUND", Message: "pañolero no encontrado"})
		case errors.Is(err, domain.ErrShiftAlreadyOpen):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SHIFT_ALREADY_OPEN", Message: "ya hay un turno sin finalizar"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toShiftResponse(s))
}

// Close godoc
// @Summary      Finalizar el turno abierto
// @Description  El cierre se atribuye al usuario autenticado.
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/close [post]
func (h *ShiftHandler) Close(c *fiber.Ctx) error {
	s, err := h.uc.CloseShift(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrShiftNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_OPEN_SHIFT", Message: "no hay turno abierto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toShiftResponse(s))
}

// Current godoc
// @Summary      Turno abierto actual
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/current [get]
func (h *ShiftHandler) Current(c *fiber.Ctx) error {
	s, err := h.uc.CurrentOpenShift(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if s == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_OPEN_SHIFT", Message: "no hay turno abierto"})
	}
	return c.JSON(toShiftResponse(s))
}

// List godoc
// @Summary      Listar turnos
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Substring sobre el nombre del pañolero"
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Param        limit   query  int     false  "Límite (default 20)"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {array}  dto.ShiftResponse
// @Router       /api/shifts [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from debe ser RFC3339"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to debe ser RFC3339"})
	}

	shifts, err := h.uc.List(c.Context(), c.Query("search"), from, to, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, toShiftResponse(s))
	}
	return c.JSON(out)
}

func toShiftResponse(s *entity.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:          s.ID,
		AttendantID: s.AttendantID,
		EntryTime:   s.EntryTime,
		ExitTime:    s.ExitTime,
		ClosedBy:    s.ClosedBy,
		Open:        s.Open(),
	}
}
