package orders_test

import (
	"context"
	"strings"

	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	// stockWrites registra cada UpdateStock en orden (id del producto).
	stockWrites    []string
	forUpdateReads int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) clone() *fakeProductRepo {
	return newFakeProductRepo(r.values()...)
}

func (r *fakeProductRepo) values() []*entity.Product {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out
}

func (r *fakeProductRepo) stockOf(id string) int { return r.products[id].Stock }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	r.forUpdateReads++
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stock int) error {
	r.products[productID].Stock = stock
	r.stockWrites = append(r.stockWrites, productID)
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) { return r.values(), nil }

func (r *fakeProductRepo) SearchByName(text string, limit int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(text)) && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: map[string]*entity.Client{}}
	for _, c := range clients {
		cp := *c
		r.clients[c.ID] = &cp
	}
	return r
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByEmail(email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) List() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeClientRepo) ListBySeller(sellerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.SellerID == sellerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{}
	for _, o := range orders {
		cp := *o
		r.orders = append(r.orders, &cp)
	}
	return r
}

func (r *fakeOrderRepo) clone() *fakeOrderRepo { return newFakeOrderRepo(r.orders...) }

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Update(o *entity.Order) error {
	for i, existing := range r.orders {
		if existing.ID == o.ID {
			cp := *o
			r.orders[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeOrderRepo) List() ([]*entity.Order, error) { return r.orders, nil }

func (r *fakeOrderRepo) ListBySeller(sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListBySellerAndStatus(sellerID, status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID && o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeTxRunner ejecuta fn sobre copias y solo publica los cambios si fn no
// falla, emulando commit/rollback.
type fakeTxRunner struct {
	products *fakeProductRepo
	orders   *fakeOrderRepo
	runs     int
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	r.runs++
	txProducts := r.products.clone()
	txOrders := r.orders.clone()
	if err := fn(txProducts, txOrders); err != nil {
		return err
	}
	r.products.products = txProducts.products
	r.products.stockWrites = append(r.products.stockWrites, txProducts.stockWrites...)
	r.products.forUpdateReads += txProducts.forUpdateReads
	r.orders.orders = txOrders.orders
	return nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)
var _ repository.ClientRepository = (*fakeClientRepo)(nil)
var _ repository.OrderRepository = (*fakeOrderRepo)(nil)
