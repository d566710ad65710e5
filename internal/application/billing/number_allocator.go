package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

// Asignación de números de factura: INV-0001, INV-0002, ...
//
// El máximo actual se lee siempre del store (nunca se cachea en el proceso,
// para seguir siendo correcto con varias instancias). Se propone max+1 y se
// intenta insertar; si otro proceso ganó la carrera el constraint único de
// invoice_no devuelve domain.ErrDuplicate y se reintenta con el siguiente
// candidato, en una transacción nueva (PostgreSQL aborta la transacción tras
// la violación). Los reintentos son invisibles para el caller.
const (
	invoiceNoFormat   = "INV-%04d"
	maxNumberAttempts = 5
)

// persistInvoice asigna el número y persiste cabecera + líneas atómicamente.
// Cada intento es una transacción propia: cabecera e ítems entran juntos o no
// entra nada. Agotados los intentos (contención patológica) se usa un sufijo
// derivado del reloj para garantizar avance, sacrificando el formato secuencial.
func (uc *InvoiceUseCase) persistInvoice(ctx context.Context, inv *entity.Invoice, items []*entity.InvoiceItem) error {
	seq, err := uc.invoiceRepo.MaxInvoiceSeq()
	if err != nil {
		return fmt.Errorf("read max invoice number: %w", err)
	}
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		seq++
		inv.InvoiceNo = fmt.Sprintf(invoiceNoFormat, seq)
		err = uc.insertOnce(ctx, inv, items)
		if errors.Is(err, domain.ErrDuplicate) {
			continue // perdimos la carrera: siguiente candidato
		}
		return err
	}
	inv.InvoiceNo = fmt.Sprintf("INV-%d", time.Now().UnixMilli())
	return uc.insertOnce(ctx, inv, items)
}

func (uc *InvoiceUseCase) insertOnce(ctx context.Context, inv *entity.Invoice, items []*entity.InvoiceItem) error {
	return uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
}
