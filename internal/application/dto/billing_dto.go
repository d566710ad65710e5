package dto

import "github.com/shopspring/decimal"

// CreateInvoiceItemRequest línea para POST /api/invoices.
// Quantity es opcional: si se omite (0) se asume 1, como en el catálogo de
// precios unitarios. Cantidades negativas o cero explícitas las rechaza la
// regla de negocio (400), no el esquema.
type CreateInvoiceItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// Las fechas viajan como YYYY-MM-DD. Address es opcional: si va vacío se usa
// la dirección registrada del cliente. El impuesto es siempre porcentual
// (tax_percentage, 0..100); no se acepta un monto plano.
type CreateInvoiceRequest struct {
	ClientID      string                     `json:"client_id" validate:"required"`
	Address       string                     `json:"address,omitempty"`
	IssueDate     string                     `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate       string                     `json:"due_date" validate:"required,datetime=2006-01-02"`
	TaxPercentage decimal.Decimal            `json:"tax_percentage"`
	Items         []CreateInvoiceItemRequest `json:"items" validate:"dive"`
}

// InvoiceItemResponse línea de factura en la respuesta.
type InvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceResponse factura completa para POST /api/invoices y GET /api/invoices/:id.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNo     string                `json:"invoice_no"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	Client        ClientResponse        `json:"client"`
	Address       string                `json:"address"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxPercentage decimal.Decimal       `json:"tax_percentage"`
	TaxAmount     decimal.Decimal       `json:"tax_amount"`
	Total         decimal.Decimal       `json:"total"`
}

// InvoiceListItem fila resumida para GET /api/invoices.
type InvoiceListItem struct {
	ID         string          `json:"id"`
	InvoiceNo  string          `json:"invoice_no"`
	IssueDate  string          `json:"issue_date"`
	DueDate    string          `json:"due_date"`
	ClientName string          `json:"client_name"`
	ItemCount  int             `json:"item_count"`
	Total      decimal.Decimal `json:"total"`
}

// InvoiceListResponse envoltura del listado con metadatos de página.
type InvoiceListResponse struct {
	Invoices []InvoiceListItem `json:"invoices"`
	Page     PageResponse      `json:"page"`
}

// ListInvoicesQuery filtros de GET /api/invoices (query string).
// Las fechas acotan rangos inclusivos sobre issue_date y due_date.
type ListInvoicesQuery struct {
	ClientID      string `query:"client_id"`
	IssueDateFrom string `query:"issue_date_from" validate:"omitempty,datetime=2006-01-02"`
	IssueDateTo   string `query:"issue_date_to" validate:"omitempty,datetime=2006-01-02"`
	DueDateFrom   string `query:"due_date_from" validate:"omitempty,datetime=2006-01-02"`
	DueDateTo     string `query:"due_date_to" validate:"omitempty,datetime=2006-01-02"`
	PageRequest
}
