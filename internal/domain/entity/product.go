package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (datos semilla, solo lectura).
// El precio vigente se copia a InvoiceItem.UnitPrice al facturar; cambios
// posteriores del catálogo no afectan facturas ya emitidas.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}
