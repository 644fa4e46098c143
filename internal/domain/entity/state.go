package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
)

// StockState es el estado de condición de una cantidad de stock.
// Cada estado corresponde a un contador fijo de la fila de stock.
type StockState int

const (
	StateGood    StockState = iota + 1 // "En Condiciones"
	StateRepair                        // "En Reparación"
	StateRetired                       // "De Baja"
	StateLoaned                        // "Prestadas"
)

// Etiquetas visibles de cada estado, como aparecen en los listados.
var stateLabels = map[StockState]string{
	StateGood:    "En Condiciones",
	StateRepair:  "En Reparación",
	StateRetired: "De Baja",
	StateLoaned:  "Prestadas",
}

// Tabla explícita etiqueta normalizada → estado. La resolución de etiquetas
// se hace por lookup, no recortando texto a ciegas.
var stateByKey = map[string]StockState{
	"condiciones": StateGood,
	"reparacion":  StateRepair,
	"baja":        StateRetired,
	"prestadas":   StateLoaned,
	"prest":       StateLoaned,
}

func (s StockState) String() string {
	if label, ok := stateLabels[s]; ok {
		return label
	}
	return "Desconocido"
}

// Valid indica si el estado es uno de los cuatro contadores conocidos.
func (s StockState) Valid() bool {
	_, ok := stateLabels[s]
	return ok
}

// ParseStateLabel resuelve una etiqueta de estado a su StockState canónico.
// Acepta variantes con calificador inicial ("En Reparación", "De Baja",
// "Préstamo Reparación"), con o sin tildes y en cualquier mayúscula/minúscula.
func ParseStateLabel(label string) (StockState, error) {
	key := foldLabel(label)
	// El calificador inicial ("en", "de", o el tipo de movimiento que algunos
	// listados anteponen) no forma parte del nombre del contador.
	if i := strings.LastIndexByte(key, ' '); i >= 0 {
		key = key[i+1:]
	}
	if state, ok := stateByKey[key]; ok {
		return state, nil
	}
	return 0, domain.ErrInvalidInput
}

// foldLabel normaliza una etiqueta: minúsculas, sin tildes, sin espacios sobrantes.
func foldLabel(label string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, label)
	if err != nil {
		folded = label
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
