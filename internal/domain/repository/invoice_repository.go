package repository

import (
	"time"

	"github.com/jhoicas/invoicing-api/internal/domain/entity"
)

// InvoiceFilter filtros y paginación para listados de facturas.
type InvoiceFilter struct {
	ClientID      string
	IssueDateFrom *time.Time
	IssueDateTo   *time.Time
	DueDateFrom   *time.Time
	DueDateTo     *time.Time
	Limit         int
	Offset        int
}

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	// Create persiste la cabecera. Retorna domain.ErrDuplicate si el
	// invoice_no ya existe (violación del constraint único).
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	// MaxInvoiceSeq devuelve el mayor sufijo numérico entre los invoice_no
	// existentes (0 si no hay facturas). Se calcula siempre contra el store,
	// nunca se cachea en memoria del proceso.
	MaxInvoiceSeq() (int64, error)
	GetByID(id string) (*entity.Invoice, error) // (nil, nil) si no existe
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	List(filter InvoiceFilter) ([]*entity.InvoiceSummary, error)
	// Delete borra la factura; las líneas caen por ON DELETE CASCADE.
	// Retorna false si la factura no existía.
	Delete(id string) (bool, error)
}
