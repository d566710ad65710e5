package billing

import (
	"context"
	"time"

	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

// GetByID obtiene una factura completa: cabecera, cliente y líneas con nombre
// de producto.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		// El FK garantiza el cliente; si falta es corrupción de datos.
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(inv, client, items), nil
}

// List lista facturas resumidas, más recientes primero, con filtros por
// cliente y rangos de fechas, y paginación (limit 1..100, default 20).
func (uc *InvoiceUseCase) List(ctx context.Context, q dto.ListInvoicesQuery) (*dto.InvoiceListResponse, error) {
	q.DefaultPage()

	filter := repository.InvoiceFilter{
		ClientID: q.ClientID,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
	var err error
	if filter.IssueDateFrom, err = parseOptionalDate(q.IssueDateFrom); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if filter.IssueDateTo, err = parseOptionalDate(q.IssueDateTo); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if filter.DueDateFrom, err = parseOptionalDate(q.DueDateFrom); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if filter.DueDateTo, err = parseOptionalDate(q.DueDateTo); err != nil {
		return nil, domain.ErrInvalidInput
	}

	summaries, err := uc.invoiceRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceListResponse{
		Invoices: make([]dto.InvoiceListItem, 0, len(summaries)),
		Page:     dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}
	for _, s := range summaries {
		out.Invoices = append(out.Invoices, dto.InvoiceListItem{
			ID:         s.ID,
			InvoiceNo:  s.InvoiceNo,
			IssueDate:  s.IssueDate.Format(dateLayout),
			DueDate:    s.DueDate.Format(dateLayout),
			ClientName: s.ClientName,
			ItemCount:  s.ItemCount,
			Total:      s.Total,
		})
	}
	return out, nil
}

// Delete borra una factura y sus líneas (cascada en la base de datos).
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.invoiceRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, client *entity.Client, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:        inv.ID,
		InvoiceNo: inv.InvoiceNo,
		IssueDate: inv.IssueDate.Format(dateLayout),
		DueDate:   inv.DueDate.Format(dateLayout),
		Client: dto.ClientResponse{
			ID:                    client.ID,
			Name:                  client.Name,
			Address:               client.Address,
			CompanyRegistrationNo: client.CompanyRegistrationNo,
		},
		Address:       inv.Address,
		Items:         make([]dto.InvoiceItemResponse, 0, len(items)),
		Subtotal:      inv.Subtotal,
		TaxPercentage: inv.TaxPercentage,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return resp
}
