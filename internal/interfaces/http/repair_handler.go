package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
)

// RepairHandler maneja los seguimientos de reparación (protegido).
type RepairHandler struct {
	uc *inventory.RepairUseCase
}

// NewRepairHandler construye el handler de reparaciones.
func NewRepairHandler(uc *inventory.RepairUseCase) *RepairHandler {
	return &RepairHandler{uc: uc}
}

// List godoc
// @Summary      Listar seguimientos de reparación
// @Tags         repairs
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Substring sobre la herramienta o las notas"
// @Param        open    query  bool    false  "Sólo reparaciones sin regresar"
// @Param        limit   query  int     false  "Límite (default 20)"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {array}  dto.RepairResponse
// @Router       /api/repairs [get]
func (h *RepairHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	repairs, err := h.uc.List(c.Context(), c.Query("search"), c.QueryBool("open"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.RepairResponse, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, toRepairResponse(r))
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar seguimiento de reparación
// @Description  Marca el regreso de las unidades; el reingreso al stock se registra con un movimiento aparte.
// @Tags         repairs
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.RepairResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/repairs/{id}/close [post]
func (h *RepairHandler) Close(c *fiber.Ctx) error {
	repair, err := h.uc.Close(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reparación no encontrada"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_CLOSED", Message: "la reparación ya está cerrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(toRepairResponse(repair))
}

func toRepairResponse(r *entity.Repair) dto.RepairResponse {
	return dto.RepairResponse{
		ID:          r.ID,
		StockItemID: r.StockItemID,
		MovementID:  r.MovementID,
		Quantity:    r.Quantity,
		SentAt:      r.SentAt,
		ReturnedAt:  r.ReturnedAt,
		Notes:       r.Notes,
	}
}
