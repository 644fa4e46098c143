package inventory

import (
	"context"
	"time"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// DebtReportGenerator puerto del generador del resumen de deudas imprimible.
type DebtReportGenerator interface {
	GenerateDebtReport(ctx context.Context, groupBy repository.DebtGroupBy, groups []*DebtGroup, generatedAt time.Time) ([]byte, error)
}

// DebtReportUseCase arma el resumen de deudas en PDF a partir de la vista
// agregada, para repartir a los cursos al cierre del ciclo.
type DebtReportUseCase struct {
	debts     *DebtUseCase
	generator DebtReportGenerator
}

// NewDebtReportUseCase construye el caso de uso del resumen.
func NewDebtReportUseCase(debts *DebtUseCase, generator DebtReportGenerator) *DebtReportUseCase {
	return &DebtReportUseCase{debts: debts, generator: generator}
}

// GenerateReport devuelve los bytes del PDF del resumen de deudas.
func (uc *DebtReportUseCase) GenerateReport(ctx context.Context, groupBy repository.DebtGroupBy, f repository.DebtFilter) ([]byte, error) {
	groups, err := uc.debts.ListDebts(ctx, groupBy, f)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateDebtReport(ctx, groupBy, groups, time.Now())
}
