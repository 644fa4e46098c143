// Package audit contiene el renderizado de entradas del historial: la
// interpretación de los snapshots posicionales según la gestión y la
// operación de cada entrada.
package audit

import (
	"fmt"
	"strings"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
)

// template describe cómo narrar las entradas de una gestión: el sustantivo
// con su artículo, la etiqueta del campo identificatorio y las etiquetas
// posicionales del resto de los campos del snapshot.
type template struct {
	noun       string // "la herramienta", "el grupo", ...
	labelField string // etiqueta del campo que identifica al registro
	fields     []string
}

// Mapeo fijo gestión → plantilla. Una gestión sin plantilla no puede
// renderizarse y Render falla en vez de producir texto en blanco.
var templates = map[string]template{
	entity.AuditKindStock: {
		noun:       "la herramienta",
		labelField: "Descripción",
		fields: []string{
			"Cantidad en condiciones", "Cantidad en reparación",
			"Cantidad de baja", "Cantidad prestadas",
			"Grupo", "Subgrupo", "Ubicación",
		},
	},
	entity.AuditKindGroups:    {noun: "el grupo", labelField: "Grupo"},
	entity.AuditKindSubgroups: {noun: "el subgrupo", labelField: "Subgrupo", fields: []string{"Grupo"}},
	entity.AuditKindStudents:  {noun: "el alumno", labelField: "Nombre y apellido", fields: []string{"Curso", "DNI"}},
	entity.AuditKindStaff:     {noun: "el personal", labelField: "Nombre y apellido", fields: []string{"Clase", "DNI"}},
	entity.AuditKindClasses:   {noun: "la clase", labelField: "Clase", fields: []string{"Categoría"}},
	entity.AuditKindLocations: {noun: "la ubicación", labelField: "Ubicación"},
}

// Render produce la descripción legible de una entrada del historial,
// sustituyendo posicionalmente los valores viejos y nuevos en la plantilla
// de su gestión. Una combinación gestión/operación sin plantilla devuelve
// ErrInvalidTemplate.
func Render(e *entity.AuditEntry) (string, error) {
	tpl, ok := templates[e.Kind]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", domain.ErrInvalidTemplate, e.Kind, e.Operation)
	}
	switch e.Operation {
	case entity.AuditOpInsert:
		return renderInsert(tpl, e), nil
	case entity.AuditOpEdit:
		return renderEdit(tpl, e), nil
	case entity.AuditOpDelete:
		return renderDelete(tpl, e), nil
	}
	return "", fmt.Errorf("%w: %s/%s", domain.ErrInvalidTemplate, e.Kind, e.Operation)
}

func renderInsert(tpl template, e *entity.AuditEntry) string {
	if len(tpl.fields) == 0 {
		return fmt.Sprintf("Se insertó %s %s.", tpl.noun, e.EntityLabel)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Se insertó %s %s, con los siguientes datos:", tpl.noun, e.EntityLabel)
	values := splitSnapshot(e.NewValues)
	for i, field := range tpl.fields {
		fmt.Fprintf(&b, "\n- %s: %s", field, at(values, i))
	}
	return b.String()
}

func renderEdit(tpl template, e *entity.AuditEntry) string {
	// En ediciones, NewValues lleva la etiqueta nueva en la posición 0 y los
	// campos corridos una posición respecto de OldValues.
	newValues := splitSnapshot(e.NewValues)
	if len(tpl.fields) == 0 {
		return fmt.Sprintf("Se editó %s %s, y se reemplazó por %s %s.",
			tpl.noun, e.EntityLabel, tpl.noun, at(newValues, 0))
	}
	oldValues := splitSnapshot(e.OldValues)
	var b strings.Builder
	fmt.Fprintf(&b, "Se editó %s %s, y se reemplazaron los siguientes datos:", tpl.noun, e.EntityLabel)
	fmt.Fprintf(&b, "\n- %s: %s, por %s", tpl.labelField, e.EntityLabel, at(newValues, 0))
	for i, field := range tpl.fields {
		fmt.Fprintf(&b, "\n- %s: %s, por %s", field, at(oldValues, i), at(newValues, i+1))
	}
	return b.String()
}

func renderDelete(tpl template, e *entity.AuditEntry) string {
	if len(tpl.fields) == 0 {
		return fmt.Sprintf("Se eliminó %s %s.", tpl.noun, e.EntityLabel)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Se eliminó %s %s, que tenía los siguientes datos:", tpl.noun, e.EntityLabel)
	values := splitSnapshot(e.OldValues)
	for i, field := range tpl.fields {
		fmt.Fprintf(&b, "\n- %s: %s", field, at(values, i))
	}
	return b.String()
}

// splitSnapshot separa un snapshot unido por ';'. Un snapshot vacío no tiene
// posiciones.
func splitSnapshot(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ";")
}

func at(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return values[i]
}
