package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// DebtHandler expone la vista de deudas pendientes y su resumen en PDF
// (protegido).
type DebtHandler struct {
	debts  *inventory.DebtUseCase
	report *inventory.DebtReportUseCase
}

// NewDebtHandler construye el handler de deudas.
func NewDebtHandler(debts *inventory.DebtUseCase, report *inventory.DebtReportUseCase) *DebtHandler {
	return &DebtHandler{debts: debts, report: report}
}

// List godoc
// @Summary      Listar deudas pendientes
// @Description  Saldos netos préstamo-devolución agrupados por herramienta o por persona.
// @Tags         debts
// @Security     Bearer
// @Produce      json
// @Param        group_by      query  string  false  "herramienta (default) o persona"
// @Param        search        query  string  false  "Substring sobre herramienta o persona"
// @Param        movement_id   query  string  false  "Limitar a un movimiento puntual"
// @Param        shift_id      query  string  false  "Limitar a un turno"
// @Param        attendant_id  query  string  false  "Limitar a los turnos de un pañolero"
// @Success      200  {array}   dto.DebtGroupDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/debts [get]
func (h *DebtHandler) List(c *fiber.Ctx) error {
	groupBy, f := debtQuery(c)
	groups, err := h.debts.ListDebts(c.Context(), groupBy, f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "group_by debe ser herramienta o persona"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.DebtGroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, toDebtGroupDTO(g))
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Resumen de deudas en PDF
// @Tags         debts
// @Security     Bearer
// @Produce      application/pdf
// @Param        group_by      query  string  false  "herramienta (default) o persona"
// @Param        search        query  string  false  "Substring sobre herramienta o persona"
// @Param        movement_id   query  string  false  "Limitar a un movimiento puntual"
// @Param        shift_id      query  string  false  "Limitar a un turno"
// @Param        attendant_id  query  string  false  "Limitar a los turnos de un pañolero"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/debts/report [get]
func (h *DebtHandler) Report(c *fiber.Ctx) error {
	groupBy, f := debtQuery(c)
	pdfBytes, err := h.report.GenerateReport(c.Context(), groupBy, f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "group_by debe ser herramienta o persona"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("deudas-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func debtQuery(c *fiber.Ctx) (repository.DebtGroupBy, repository.DebtFilter) {
	groupBy := repository.DebtGroupBy(c.Query("group_by", string(repository.DebtByTool)))
	f := repository.DebtFilter{
		Search:      c.Query("search"),
		MovementID:  c.Query("movement_id"),
		ShiftID:     c.Query("shift_id"),
		AttendantID: c.Query("attendant_id"),
	}
	return groupBy, f
}

func toDebtGroupDTO(g *inventory.DebtGroup) dto.DebtGroupDTO {
	details := make([]dto.DebtDetailDTO, 0, len(g.Rows))
	for _, r := range g.Rows {
		details = append(details, dto.DebtDetailDTO{
			StockItemID:     r.StockItemID,
			ItemDescription: r.ItemDescription,
			PersonID:        r.PersonID,
			PersonName:      r.PersonName,
			ClassLabel:      r.ClassLabel,
			Quantity:        r.Quantity,
		})
	}
	return dto.DebtGroupDTO{
		SubjectID: g.SubjectID,
		Subject:   g.Subject,
		Total:     g.Total,
		Details:   details,
	}
}
