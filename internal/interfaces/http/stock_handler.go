package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
)

// StockHandler maneja el CRUD de herramientas e insumos (protegido).
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Crear herramienta/insumo
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockItemRequest  true  "description, cantidades por estado, subgroup_id, location_id"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.StockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.Context(), GetUserID(c), stockInput(in))
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockResponse(item))
}

// Update godoc
// @Summary      Editar herramienta/insumo
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID"
// @Param        body  body  dto.StockItemRequest  true  "campos a editar"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.StockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), stockInput(in))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(toStockResponse(item))
}

// Delete godoc
// @Summary      Eliminar herramienta/insumo
// @Description  Se bloquea si existen movimientos o reparaciones relacionados.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "herramienta eliminada"})
}

// GetByID godoc
// @Summary      Obtener herramienta/insumo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(toStockResponse(item))
}

// List godoc
// @Summary      Listar herramientas/insumos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        search       query  string  false  "Substring sobre descripción, grupo, subgrupo o ubicación"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Param        limit        query  int     false  "Límite (default 20)"
// @Param        offset       query  int     false  "Offset"
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	items, err := h.uc.List(c.Context(), c.Query("search"), c.Query("location_id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toStockResponse(item))
	}
	return c.JSON(out)
}

func stockInput(in dto.StockItemRequest) inventory.StockInput {
	return inventory.StockInput{
		Description: in.Description,
		QtyGood:     in.QtyGood,
		QtyRepair:   in.QtyRepair,
		QtyRetired:  in.QtyRetired,
		QtyLoaned:   in.QtyLoaned,
		SubgroupID:  in.SubgroupID,
		LocationID:  in.LocationID,
	}
}

func toStockResponse(item *entity.StockItem) dto.StockItemResponse {
	return dto.StockItemResponse{
		ID:          item.ID,
		Description: item.Description,
		QtyGood:     item.QtyGood,
		QtyRepair:   item.QtyRepair,
		QtyRetired:  item.QtyRetired,
		QtyLoaned:   item.QtyLoaned,
		Total:       item.Total(),
		SubgroupID:  item.SubgroupID,
		LocationID:  item.LocationID,
		UpdatedAt:   item.UpdatedAt,
	}
}

func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "herramienta no encontrada"})
	case errors.Is(err, domain.ErrReferentialBlock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REFERENTIAL_BLOCK", Message: "tiene registros relacionados: elimínelos primero"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
