package entity

import "github.com/shopspring/decimal"

// InvoiceItem representa una línea de una factura. La factura es dueña de sus
// líneas: se crean y se borran junto con la cabecera (ON DELETE CASCADE).
// UnitPrice es una copia del precio del producto al momento de facturar.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductID   string
	ProductName string // derivado del join con products; no se persiste en invoice_items
	LineNo      int    // posición de la línea según el orden del request
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal // Quantity × UnitPrice
}
