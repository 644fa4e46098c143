package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// fakeDebtRepo devuelve filas de deuda preparadas, ya ordenadas por sujeto
// como lo hace la consulta real.
type fakeDebtRepo struct {
	fakeMovementRepo
	rows       []*repository.DebtRow
	lastFilter repository.DebtFilter
}

func (r *fakeDebtRepo) ListDebts(groupBy repository.DebtGroupBy, f repository.DebtFilter) ([]*repository.DebtRow, error) {
	r.lastFilter = f
	return r.rows, nil
}

func deuda(itemID, item, personID, person string, qty int64) *repository.DebtRow {
	return &repository.DebtRow{
		StockItemID:     itemID,
		ItemDescription: item,
		PersonID:        personID,
		PersonName:      person,
		Quantity:        decimal.NewFromInt(qty),
	}
}

// Caso de referencia: préstamo de 10 martillos y devolución de 3 dejan una
// única fila agregada con saldo 7.
func TestListDebts_MartilloNeto(t *testing.T) {
	uc := inventory.NewDebtUseCase(&fakeDebtRepo{rows: []*repository.DebtRow{
		deuda("item-1", "Martillo", "p-1", "Juan Pérez", 7),
	}})

	groups, err := uc.ListDebts(context.Background(), repository.DebtByTool, repository.DebtFilter{})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Martillo", groups[0].Subject)
	assert.True(t, groups[0].Total.Equal(decimal.NewFromInt(7)))
}

// La pantalla de deudas permite acotar por movimiento puntual además de por
// turno y pañolero; el filtro debe llegar entero a la consulta.
func TestListDebts_PropagaFiltrosALaConsulta(t *testing.T) {
	repo := &fakeDebtRepo{}
	uc := inventory.NewDebtUseCase(repo)

	filtro := repository.DebtFilter{
		Search:      "martillo",
		MovementID:  "mov-42",
		ShiftID:     "turno-3",
		AttendantID: "panolero-1",
	}
	_, err := uc.ListDebts(context.Background(), repository.DebtByTool, filtro)
	require.NoError(t, err)
	assert.Equal(t, filtro, repo.lastFilter)
}

func TestListDebts_PliegaFilasConsecutivasPorHerramienta(t *testing.T) {
	uc := inventory.NewDebtUseCase(&fakeDebtRepo{rows: []*repository.DebtRow{
		deuda("item-1", "Martillo", "p-1", "Juan Pérez", 2),
		deuda("item-1", "Martillo", "p-2", "Ana Gómez", 5),
		deuda("item-2", "Taladro", "p-1", "Juan Pérez", 1),
	}})

	groups, err := uc.ListDebts(context.Background(), repository.DebtByTool, repository.DebtFilter{})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Martillo", groups[0].Subject)
	assert.True(t, groups[0].Total.Equal(decimal.NewFromInt(7)))
	assert.Len(t, groups[0].Rows, 2)

	assert.Equal(t, "Taladro", groups[1].Subject)
	assert.True(t, groups[1].Total.Equal(decimal.NewFromInt(1)))
}

func TestListDebts_AgrupadoPorPersona(t *testing.T) {
	uc := inventory.NewDebtUseCase(&fakeDebtRepo{rows: []*repository.DebtRow{
		deuda("item-1", "Martillo", "p-1", "Juan Pérez", 2),
		deuda("item-2", "Taladro", "p-1", "Juan Pérez", 1),
		deuda("item-1", "Martillo", "p-2", "Ana Gómez", 5),
	}})

	groups, err := uc.ListDebts(context.Background(), repository.DebtByPerson, repository.DebtFilter{})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Juan Pérez", groups[0].Subject)
	assert.True(t, groups[0].Total.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, "Ana Gómez", groups[1].Subject)
}

// Los saldos cero o negativos presentes en los datos se muestran tal cual.
func TestListDebts_SaldoNegativoIncluido(t *testing.T) {
	uc := inventory.NewDebtUseCase(&fakeDebtRepo{rows: []*repository.DebtRow{
		deuda("item-1", "Martillo", "p-1", "Juan Pérez", -2),
	}})

	groups, err := uc.ListDebts(context.Background(), repository.DebtByTool, repository.DebtFilter{})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.True(t, groups[0].Total.Equal(decimal.NewFromInt(-2)))
}

func TestListDebts_SinMovimientos(t *testing.T) {
	uc := inventory.NewDebtUseCase(&fakeDebtRepo{})

	groups, err := uc.ListDebts(context.Background(), repository.DebtByTool, repository.DebtFilter{})
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestListDebts_CriterioInvalido(t *testing.T) {
	uc := inventory.NewDebtUseCase(&fakeDebtRepo{})

	_, err := uc.ListDebts(context.Background(), repository.DebtGroupBy("turno"), repository.DebtFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El registro de un préstamo y su devolución netean la deuda de punta a punta
// en el dominio: el mismo par débito/crédito que alimenta la consulta.
func TestPrestamoYDevolucion_NetoCero(t *testing.T) {
	item := &entity.StockItem{ID: "item-1", QtyGood: decimal.NewFromInt(10)}

	require.NoError(t, entity.MovementTypeLend.Apply(item, entity.StateGood, decimal.NewFromInt(10)))
	require.NoError(t, entity.MovementTypeReturn.Apply(item, entity.StateGood, decimal.NewFromInt(3)))

	assert.True(t, item.QtyLoaned.Equal(decimal.NewFromInt(7)),
		"préstamo 10 y devolución 3 dejan 7 prestadas")
}
