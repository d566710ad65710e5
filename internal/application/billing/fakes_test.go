package billing_test

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. El fake de facturas impone
// la unicidad de invoice_no bajo mutex, igual que el constraint único de la
// base de datos, para poder ejercitar el asignador de números bajo concurrencia.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) { return r.clients[id], nil }

func (r *fakeClientRepo) List() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	mu       sync.Mutex
	invoices map[string]*entity.Invoice
	byNo     map[string]string // invoice_no -> invoice id
	items    map[string][]*entity.InvoiceItem
	clients  *fakeClientRepo // para resolver client_name en List

	// staleMaxSeq simula una lectura desactualizada del máximo (carrera
	// perdida contra otra instancia). Si no es nil, MaxInvoiceSeq lo devuelve.
	staleMaxSeq *int64
	// failCreateItem fuerza el fallo de la inserción de líneas para probar
	// que la transacción completa se revierte.
	failCreateItem bool
}

func newFakeInvoiceRepo(clients *fakeClientRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[string]*entity.Invoice),
		byNo:     make(map[string]string),
		items:    make(map[string][]*entity.InvoiceItem),
		clients:  clients,
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byNo[inv.InvoiceNo]; taken {
		return domain.ErrDuplicate
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	r.byNo[inv.InvoiceNo] = inv.ID
	return nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreateItem {
		return domain.ErrInvalidInput
	}
	cp := *item
	r.items[item.InvoiceID] = append(r.items[item.InvoiceID], &cp)
	return nil
}

func (r *fakeInvoiceRepo) MaxInvoiceSeq() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.staleMaxSeq != nil {
		return *r.staleMaxSeq, nil
	}
	var max int64
	for no := range r.byNo {
		suffix, ok := strings.CutPrefix(no, "INV-")
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.InvoiceItem(nil), r.items[invoiceID]...), nil
}

func (r *fakeInvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.InvoiceSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.InvoiceSummary
	for _, inv := range r.invoices {
		if filter.ClientID != "" && inv.ClientID != filter.ClientID {
			continue
		}
		if filter.IssueDateFrom != nil && inv.IssueDate.Before(*filter.IssueDateFrom) {
			continue
		}
		if filter.IssueDateTo != nil && inv.IssueDate.After(*filter.IssueDateTo) {
			continue
		}
		if filter.DueDateFrom != nil && inv.DueDate.Before(*filter.DueDateFrom) {
			continue
		}
		if filter.DueDateTo != nil && inv.DueDate.After(*filter.DueDateTo) {
			continue
		}
		clientName := ""
		if c := r.clients.clients[inv.ClientID]; c != nil {
			clientName = c.Name
		}
		all = append(all, &entity.InvoiceSummary{
			ID:         inv.ID,
			InvoiceNo:  inv.InvoiceNo,
			IssueDate:  inv.IssueDate,
			DueDate:    inv.DueDate,
			ClientName: clientName,
			ItemCount:  len(r.items[inv.ID]),
			Total:      inv.Total,
		})
	}
	// Más recientes primero, como el repositorio real.
	sort.Slice(all, func(i, j int) bool { return all[i].InvoiceNo > all[j].InvoiceNo })
	if filter.Offset >= len(all) {
		return nil, nil
	}
	all = all[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	return all, nil
}

func (r *fakeInvoiceRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return false, nil
	}
	delete(r.invoices, id)
	delete(r.byNo, inv.InvoiceNo)
	delete(r.items, id) // cascada
	return true, nil
}

// fakeTxRunner imita la semántica transaccional: si fn falla, se revierten las
// filas que esa invocación alcanzó a insertar.
type fakeTxRunner struct {
	repo *fakeInvoiceRepo
}

func (r *fakeTxRunner) RunBilling(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	tx := &fakeInvoiceTx{fakeInvoiceRepo: r.repo}
	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

type fakeInvoiceTx struct {
	*fakeInvoiceRepo
	createdIDs []string
}

func (t *fakeInvoiceTx) Create(inv *entity.Invoice) error {
	if err := t.fakeInvoiceRepo.Create(inv); err != nil {
		return err
	}
	t.createdIDs = append(t.createdIDs, inv.ID)
	return nil
}

func (t *fakeInvoiceTx) rollback() {
	for _, id := range t.createdIDs {
		_, _ = t.fakeInvoiceRepo.Delete(id)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos semilla de test (subconjunto del catálogo real)
// ──────────────────────────────────────────────────────────────────────────────

const (
	testClientID  = "c0000000-0000-0000-0000-000000000001"
	testProductA  = "a0000000-0000-0000-0000-000000000001" // Web Development Service, 1500.00
	testProductB  = "a0000000-0000-0000-0000-000000000002" // Logo Design, 500.00
	testClientDir = "123 Business Ave, Suite 100, New York, NY 10001"
)

func seedCatalog() (*fakeClientRepo, *fakeProductRepo) {
	clients := &fakeClientRepo{clients: map[string]*entity.Client{
		testClientID: {
			ID:                    testClientID,
			Name:                  "Acme Corporation",
			Address:               testClientDir,
			CompanyRegistrationNo: "REG-2024-ACME-001",
		},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductA: {ID: testProductA, Name: "Web Development Service", Price: decimal.NewFromFloat(1500.00)},
		testProductB: {ID: testProductB, Name: "Logo Design", Price: decimal.NewFromFloat(500.00)},
	}}
	return clients, products
}
