package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// MovementHandler maneja el registro y la consulta de movimientos (protegido).
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovementQueryUseCase
}

// NewMovementHandler construye el handler de movimientos.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, query *inventory.MovementQueryUseCase) *MovementHandler {
	return &MovementHandler{register: register, query: query}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  Tipos: 1 Carga, 2 Envío a Reparación, 3 Préstamo, 4 Devolución, 5 Baja.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "stock_item_id, state, quantity, person_id, type"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.register.RegisterMovement(c.Context(), inventory.MovementInput{
		UserID:      GetUserID(c),
		StockItemID: in.StockItemID,
		StateLabel:  in.State,
		Quantity:    in.Quantity,
		PersonID:    in.PersonID,
		Type:        entity.MovementType(in.Type),
		Description: in.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser mayor a cero"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo o estado inválido"})
		case errors.Is(err, domain.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "herramienta no encontrada"})
		case errors.Is(err, domain.ErrPersonNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PERSON_NOT_FOUND", Message: "persona no encontrada"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en el estado de origen"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(movement))
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	movement, err := h.query.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toMovementResponse(movement))
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        search         query  string  false  "Substring sobre herramienta, persona o descripción"
// @Param        stock_item_id  query  string  false  "Filtrar por herramienta"
// @Param        person_id      query  string  false  "Filtrar por persona"
// @Param        shift_id       query  string  false  "Filtrar por turno"
// @Param        from           query  string  false  "Desde (RFC3339)"
// @Param        to             query  string  false  "Hasta (RFC3339)"
// @Param        limit          query  int     false  "Límite (default 20)"
// @Param        offset         query  int     false  "Offset"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	f := repository.MovementFilter{
		Search:      c.Query("search"),
		StockItemID: c.Query("stock_item_id"),
		PersonID:    c.Query("person_id"),
		ShiftID:     c.Query("shift_id"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	var err error
	if f.From, err = parseTimeQuery(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from debe ser RFC3339"})
	}
	if f.To, err = parseTimeQuery(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to debe ser RFC3339"})
	}

	movements, err := h.query.List(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ShiftID:     m.ShiftID,
		StockItemID: m.StockItemID,
		State:       m.State.String(),
		Quantity:    m.Quantity,
		PersonID:    m.PersonID,
		Timestamp:   m.Timestamp,
		Type:        int(m.Type),
		TypeLabel:   m.Type.String(),
		Description: m.Description,
		RecordedBy:  m.RecordedBy,
	}
}

// parseTimeQuery devuelve nil si el parámetro viene vacío.
func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
