package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/audit"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// AuditHandler expone el historial de gestiones (protegido, sólo lectura).
type AuditHandler struct {
	uc *audit.UseCase
}

// NewAuditHandler construye el handler del historial.
func NewAuditHandler(uc *audit.UseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar historial de gestiones
// @Description  Entradas del historial con su descripción renderizada, de la más reciente a la más vieja.
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        kind    query  string  false  "Gestión: Stock, Grupos, Subgrupos, Alumnos, Personal, Clases, Ubicaciones"
// @Param        search  query  string  false  "Substring sobre los campos visibles"
// @Param        from    query  string  false  "Desde (RFC3339)"
// @Param        to      query  string  false  "Hasta (RFC3339)"
// @Param        limit   query  int     false  "Límite (default 20)"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {array}  dto.AuditEntryResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()

	f := repository.AuditFilter{
		Kind:   c.Query("kind"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	var err error
	if f.From, err = parseTimeQuery(c.Query("from")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from debe ser RFC3339"})
	}
	if f.To, err = parseTimeQuery(c.Query("to")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to debe ser RFC3339"})
	}

	entries, err := h.uc.List(c.Context(), f, c.Query("search"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTemplate) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "TEMPLATE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditEntryResponse{
			ID:          e.Entry.ID,
			Timestamp:   e.Entry.Timestamp,
			ActorID:     e.Entry.ActorID,
			Kind:        e.Entry.Kind,
			Operation:   e.Entry.Operation,
			EntityLabel: e.Entry.EntityLabel,
			Description: e.Description,
		})
	}
	return c.JSON(out)
}
