package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// DebtGroup es una fila agregada del listado de deudas: el sujeto (herramienta
// o persona), el total prestado sin devolver y sus filas de detalle.
type DebtGroup struct {
	SubjectID string
	Subject   string
	Total     decimal.Decimal
	Rows      []*repository.DebtRow
}

// DebtUseCase calcula la vista derivada de deudas: cantidades prestadas y no
// devueltas, agrupadas por herramienta o por persona. No tiene estado propio;
// se recalcula en cada consulta sobre el historial de movimientos.
type DebtUseCase struct {
	movRepo repository.MovementRepository
}

// NewDebtUseCase construye el agregador de deudas.
func NewDebtUseCase(movRepo repository.MovementRepository) *DebtUseCase {
	return &DebtUseCase{movRepo: movRepo}
}

// ListDebts devuelve los grupos de deudas según el sujeto pedido. Las filas
// llegan del repositorio ordenadas por sujeto; las filas consecutivas del
// mismo sujeto se pliegan en un grupo con su total. Los saldos cero o
// negativos presentes en los datos se incluyen tal cual.
func (uc *DebtUseCase) ListDebts(ctx context.Context, groupBy repository.DebtGroupBy, f repository.DebtFilter) ([]*DebtGroup, error) {
	if groupBy != repository.DebtByTool && groupBy != repository.DebtByPerson {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.movRepo.ListDebts(groupBy, f)
	if err != nil {
		return nil, err
	}

	groups := make([]*DebtGroup, 0, len(rows))
	var current *DebtGroup
	for _, row := range rows {
		subjectID, subject := row.StockItemID, row.ItemDescription
		if groupBy == repository.DebtByPerson {
			subjectID, subject = row.PersonID, row.PersonName
		}
		if current == nil || current.SubjectID != subjectID {
			current = &DebtGroup{SubjectID: subjectID, Subject: subject, Total: decimal.Zero}
			groups = append(groups, current)
		}
		current.Total = current.Total.Add(row.Quantity)
		current.Rows = append(current.Rows, row)
	}
	return groups, nil
}
