package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura. Retorna domain.ErrDuplicate si el
// invoice_no ya fue tomado por una creación concurrente (constraint único).
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO invoices (id, invoice_no, issue_date, due_date, client_id, address,
		                      tax_percentage, tax_amount, subtotal, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNo, invoice.IssueDate, invoice.DueDate,
		invoice.ClientID, invoice.Address,
		invoice.TaxPercentage, invoice.TaxAmount, invoice.Subtotal, invoice.Total,
		invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la factura.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO invoice_items (id, invoice_id, product_id, line_no, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.ProductID, item.LineNo,
		item.Quantity, item.UnitPrice, item.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// MaxInvoiceSeq devuelve el mayor sufijo numérico entre los invoice_no con
// formato INV-<n> (0 si no hay facturas). Los números de fallback
// (INV-<epoch-millis>) también cuentan: el siguiente candidato los supera.
func (r *InvoiceRepo) MaxInvoiceSeq() (int64, error) {
	const query = `
		SELECT COALESCE(MAX((substring(invoice_no from '^INV-(\d+)$'))::bigint), 0)
		FROM invoices
		WHERE invoice_no ~ '^INV-\d+$'`
	var max int64
	if err := r.q.QueryRow(context.Background(), query).Scan(&max); err != nil {
		return 0, fmt.Errorf("max invoice number: %w", err)
	}
	return max, nil
}

// GetByID obtiene la cabecera de una factura. Retorna (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	const query = `
		SELECT id, invoice_no, issue_date, due_date, client_id, address,
		       tax_percentage, tax_amount, subtotal, total, created_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.InvoiceNo, &inv.IssueDate, &inv.DueDate, &inv.ClientID, &inv.Address,
		&inv.TaxPercentage, &inv.TaxAmount, &inv.Subtotal, &inv.Total, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetItemsByInvoiceID obtiene las líneas de una factura con el nombre del
// producto, en el orden original del request.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	const query = `
		SELECT it.id, it.invoice_id, it.product_id, p.name, it.line_no,
		       it.quantity, it.unit_price, it.line_total
		FROM invoice_items it
		JOIN products p ON p.id = it.product_id
		WHERE it.invoice_id = $1
		ORDER BY it.line_no`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName,
			&it.LineNo, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List lista facturas resumidas, más recientes primero, con filtros opcionales
// por cliente y rangos de fechas.
func (r *InvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.InvoiceSummary, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT i.id, i.invoice_no, i.issue_date, i.due_date, c.name,
		       (SELECT COUNT(*) FROM invoice_items it WHERE it.invoice_id = i.id),
		       i.total
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE 1=1`)
	args := make([]any, 0, 7)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.ClientID != "" {
		sb.WriteString(" AND i.client_id = " + arg(filter.ClientID))
	}
	if filter.IssueDateFrom != nil {
		sb.WriteString(" AND i.issue_date >= " + arg(*filter.IssueDateFrom))
	}
	if filter.IssueDateTo != nil {
		sb.WriteString(" AND i.issue_date <= " + arg(*filter.IssueDateTo))
	}
	if filter.DueDateFrom != nil {
		sb.WriteString(" AND i.due_date >= " + arg(*filter.DueDateFrom))
	}
	if filter.DueDateTo != nil {
		sb.WriteString(" AND i.due_date <= " + arg(*filter.DueDateTo))
	}
	sb.WriteString(" ORDER BY i.created_at DESC, i.invoice_no DESC")
	sb.WriteString(" LIMIT " + arg(filter.Limit))
	sb.WriteString(" OFFSET " + arg(filter.Offset))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceSummary
	for rows.Next() {
		var s entity.InvoiceSummary
		if err := rows.Scan(&s.ID, &s.InvoiceNo, &s.IssueDate, &s.DueDate,
			&s.ClientName, &s.ItemCount, &s.Total); err != nil {
			return nil, fmt.Errorf("scan invoice summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete borra la factura; las líneas caen por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
