package billing

import (
	"context"

	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción de la base de
// datos, con un InvoiceRepository atado a esa transacción. Si fn retorna error
// se hace rollback completo: nunca queda una cabecera sin sus líneas.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}
