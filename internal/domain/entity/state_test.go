package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseStateLabel — resolución de etiquetas a estados canónicos
// ──────────────────────────────────────────────────────────────────────────────

func TestParseStateLabel_EtiquetasCanonicas(t *testing.T) {
	cases := []struct {
		label string
		want  entity.StockState
	}{
		{"En Condiciones", entity.StateGood},
		{"En Reparación", entity.StateRepair},
		{"De Baja", entity.StateRetired},
		{"Prestadas", entity.StateLoaned},
	}
	for _, tc := range cases {
		got, err := entity.ParseStateLabel(tc.label)
		require.NoError(t, err, "etiqueta %q debe resolverse", tc.label)
		assert.Equal(t, tc.want, got, "etiqueta %q", tc.label)
	}
}

func TestParseStateLabel_SinTildesNiMayusculas(t *testing.T) {
	got, err := entity.ParseStateLabel("en reparacion")
	require.NoError(t, err)
	assert.Equal(t, entity.StateRepair, got)

	got, err = entity.ParseStateLabel("DE BAJA")
	require.NoError(t, err)
	assert.Equal(t, entity.StateRetired, got)
}

// Algunos listados anteponen el tipo de movimiento a la etiqueta del estado;
// sólo cuenta la última palabra.
func TestParseStateLabel_ConCalificadorAntepuesto(t *testing.T) {
	got, err := entity.ParseStateLabel("Préstamo Reparación")
	require.NoError(t, err)
	assert.Equal(t, entity.StateRepair, got)
}

func TestParseStateLabel_EtiquetaDesconocida(t *testing.T) {
	_, err := entity.ParseStateLabel("En Tránsito")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.ParseStateLabel("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockItem.Adjust — invariante de contadores no negativos
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_CreditoYDebito(t *testing.T) {
	item := &entity.StockItem{QtyGood: decimal.NewFromInt(10)}

	require.NoError(t, item.Adjust(entity.StateGood, decimal.NewFromInt(5)))
	assert.True(t, item.QtyGood.Equal(decimal.NewFromInt(15)))

	require.NoError(t, item.Adjust(entity.StateGood, decimal.NewFromInt(-15)))
	assert.True(t, item.QtyGood.IsZero())
}

func TestAdjust_DebitoInsuficienteNoModifica(t *testing.T) {
	item := &entity.StockItem{QtyGood: decimal.NewFromInt(3)}

	err := item.Adjust(entity.StateGood, decimal.NewFromInt(-4))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, item.QtyGood.Equal(decimal.NewFromInt(3)),
		"un débito rechazado no debe tocar el contador")
}

// La verificación es por contador, no por total: tener stock en otros estados
// no habilita un débito del contador pedido.
func TestAdjust_VerificacionPorContador(t *testing.T) {
	item := &entity.StockItem{
		QtyGood:   decimal.NewFromInt(0),
		QtyLoaned: decimal.NewFromInt(20),
	}
	err := item.Adjust(entity.StateGood, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestAdjust_CantidadesFraccionarias(t *testing.T) {
	item := &entity.StockItem{QtyGood: decimal.RequireFromString("2.5")}
	require.NoError(t, item.Adjust(entity.StateGood, decimal.RequireFromString("-1.25")))
	assert.True(t, item.QtyGood.Equal(decimal.RequireFromString("1.25")))
}

func TestTotal_SumaLosCuatroContadores(t *testing.T) {
	item := &entity.StockItem{
		QtyGood:    decimal.NewFromInt(7),
		QtyRepair:  decimal.NewFromInt(2),
		QtyRetired: decimal.NewFromInt(1),
		QtyLoaned:  decimal.NewFromInt(3),
	}
	assert.True(t, item.Total().Equal(decimal.NewFromInt(13)))
}
