package dto

import "github.com/shopspring/decimal"

// DebtDetailDTO fila de detalle de una deuda pendiente.
type DebtDetailDTO struct {
	StockItemID     string          `json:"stock_item_id"`
	ItemDescription string          `json:"item_description"`
	PersonID        string          `json:"person_id"`
	PersonName      string          `json:"person_name"`
	ClassLabel      string          `json:"class_label"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// DebtGroupDTO fila agregada del listado de deudas: el sujeto de agrupación
// (herramienta o persona), el total adeudado y sus filas de detalle.
type DebtGroupDTO struct {
	SubjectID string          `json:"subject_id"`
	Subject   string          `json:"subject"`
	Total     decimal.Decimal `json:"total"`
	Details   []DebtDetailDTO `json:"details"`
}
