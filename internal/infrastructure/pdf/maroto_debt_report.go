// Package pdf genera el resumen imprimible de deudas del pañol con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Pañol del Taller  │  Fecha de emisión              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada sujeto (herramienta o persona):                   │
//	│    Título del sujeto + total adeudado                       │
//	│    TABLA: Contraparte | Curso/Clase | Cantidad              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de devolución                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appinv "github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoDebtReport implementa inventory.DebtReportGenerator usando Maroto v2.
type MarotoDebtReport struct{}

// NewMarotoDebtReport construye el generador.
func NewMarotoDebtReport() *MarotoDebtReport { return &MarotoDebtReport{} }

// GenerateDebtReport genera el PDF del resumen de deudas y devuelve sus bytes.
func (g *MarotoDebtReport) GenerateDebtReport(
	_ context.Context,
	groupBy repository.DebtGroupBy,
	groups []*appinv.DebtGroup,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de deudas del pañol", true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(groupBy, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(groups) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No hay deudas pendientes.", props.Text{
				Size: 10, Align: align.Center, Top: 4, Color: colorGray,
			}),
		)))
	}

	for _, grp := range groups {
		m.AddRows(subjectTitleRow(grp))
		m.AddRows(tableHeaderRow(groupBy))
		for _, r := range tableDetailRows(groupBy, grp.Rows) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	// Footer
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(
			"Las herramientas prestadas deben devolverse al pañol antes del cierre "+
				"del ciclo lectivo. Presentar este resumen al pañolero de turno.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del pañol (izq) y criterio + fecha de emisión (der).
func headerRow(groupBy repository.DebtGroupBy, generatedAt time.Time) core.Row {
	criterio := "Agrupado por herramienta"
	if groupBy == repository.DebtByPerson {
		criterio = "Agrupado por persona"
	}
	fecha := generatedAt.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("Pañol del Taller", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen de deudas pendientes", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(criterio, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// subjectTitleRow: nombre del sujeto y total adeudado.
func subjectTitleRow(grp *appinv.DebtGroup) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New(grp.Subject, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Total: "+formatQty(grp.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de filas de deuda. La columna de la
// contraparte cambia según el criterio de agrupación.
func tableHeaderRow(groupBy repository.DebtGroupBy) core.Row {
	contraparte := "Persona"
	if groupBy == repository.DebtByPerson {
		contraparte = "Herramienta"
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h(contraparte, 6, align.Left),
		h("Curso/Clase", 3, align.Left),
		h("Cantidad", 3, align.Right),
	)
}

// tableDetailRows: una fila por deuda pendiente del sujeto.
func tableDetailRows(groupBy repository.DebtGroupBy, rows []*repository.DebtRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, d := range rows {
		contraparte := d.PersonName
		if groupBy == repository.DebtByPerson {
			contraparte = d.ItemDescription
		}
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(
				contraparte,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				d.ClassLabel,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				formatQty(d.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatQty muestra la cantidad sin decimales de relleno. Ej: 3 → "3",
// 2.5 → "2.5".
func formatQty(q decimal.Decimal) string {
	if q.Equal(q.Truncate(0)) {
		return q.StringFixed(0)
	}
	return q.String()
}
