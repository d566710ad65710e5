package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura.
// Invariantes: DueDate >= IssueDate; Total = Subtotal + TaxAmount;
// Subtotal = suma de los LineTotal de sus ítems. Los montos nunca se
// recalculan después de creada la factura: el único camino de mutación
// es borrarla y crearla de nuevo.
type Invoice struct {
	ID            string
	InvoiceNo     string // único, secuencial: INV-0001, INV-0002, ...
	IssueDate     time.Time
	DueDate       time.Time
	ClientID      string
	Address       string // dirección de facturación (por defecto la del cliente)
	TaxPercentage decimal.Decimal
	TaxAmount     decimal.Decimal
	Subtotal      decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// InvoiceSummary fila resumida para listados (incluye datos derivados del join).
type InvoiceSummary struct {
	ID         string
	InvoiceNo  string
	IssueDate  time.Time
	DueDate    time.Time
	ClientName string
	ItemCount  int
	Total      decimal.Decimal
}
