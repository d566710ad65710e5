package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/domain"
	domainbilling "github.com/jhoicas/invoicing-api/internal/domain/billing"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase casos de uso de facturación: crear, consultar, listar y borrar.
type InvoiceUseCase struct {
	txRunner    BillingTxRunner
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create crea una factura: valida reglas de negocio, calcula montos con el
// servicio de dominio, asigna el número secuencial y persiste cabecera y
// líneas en una transacción. Todas las validaciones ocurren antes de escribir.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	issueDate, err := time.Parse(dateLayout, in.IssueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := time.Parse(dateLayout, in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	// due_date == issue_date es válido; solo se rechaza el orden invertido.
	if dueDate.Before(issueDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}

	lines := make([]domainbilling.Line, 0, len(in.Items))
	for _, item := range in.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1 // cantidad por defecto
		}
		if quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		lines = append(lines, domainbilling.Line{Product: product, Quantity: quantity})
	}

	calc, err := domainbilling.Calculate(domainbilling.Input{
		Lines:           lines,
		TaxPercentage:   in.TaxPercentage,
		ClientAddress:   client.Address,
		AddressOverride: in.Address,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		IssueDate:     issueDate,
		DueDate:       dueDate,
		ClientID:      client.ID,
		Address:       calc.Address,
		TaxPercentage: in.TaxPercentage,
		TaxAmount:     calc.TaxAmount,
		Subtotal:      calc.Subtotal,
		Total:         calc.Total,
		CreatedAt:     now,
	}
	items := make([]*entity.InvoiceItem, 0, len(calc.Lines))
	for i, line := range calc.Lines {
		items = append(items, &entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			LineNo:      i + 1,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   line.LineTotal,
		})
	}

	if err := uc.persistInvoice(ctx, inv, items); err != nil {
		return nil, err
	}
	return uc.toResponse(inv, client, items), nil
}
