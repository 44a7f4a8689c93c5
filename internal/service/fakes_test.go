package service

import (
	"sort"
	"time"

	"go-retail-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They copy records on the way in and out so a
// mutation is only visible after an explicit Save, like a real store.

type fakeProductRepo struct {
	products map[uuid.UUID]model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]model.Product)}
}

func copyProduct(p model.Product) model.Product {
	cp := p
	cp.Variants = append([]model.Variant(nil), p.Variants...)
	return cp
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now().UTC()
	}
	r.products[product.ID] = copyProduct(*product)
	return nil
}

func (r *fakeProductRepo) FindAll() ([]model.Product, error) {
	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, copyProduct(p))
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := copyProduct(p)
	return &cp, nil
}

func (r *fakeProductRepo) Save(product *model.Product) error {
	r.products[product.ID] = copyProduct(*product)
	return nil
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]model.Order
	seq    []uuid.UUID
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]model.Order)}
}

func copyOrder(o model.Order) model.Order {
	cp := o
	cp.Items = append([]model.OrderItem(nil), o.Items...)
	return cp
}

func (r *fakeOrderRepo) Create(order *model.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	r.orders[order.ID] = copyOrder(*order)
	r.seq = append(r.seq, order.ID)
	return nil
}

func (r *fakeOrderRepo) FindAll() ([]model.Order, error) {
	orders := make([]model.Order, 0, len(r.seq))
	for i := len(r.seq) - 1; i >= 0; i-- {
		if o, ok := r.orders[r.seq[i]]; ok {
			orders = append(orders, copyOrder(o))
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := copyOrder(o)
	return &cp, nil
}

func (r *fakeOrderRepo) Save(order *model.Order) error {
	r.orders[order.ID] = copyOrder(*order)
	return nil
}

func (r *fakeOrderRepo) Delete(id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) Count() (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) CountByStatus(status model.OrderStatus) (int64, error) {
	var count int64
	for _, o := range r.orders {
		if o.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeOrderRepo) FindRecent(limit int) ([]model.Order, error) {
	orders, _ := r.FindAll()
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (r *fakeOrderRepo) FindInRangeExcluding(start, end time.Time, excluded model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order
	for _, id := range r.seq {
		o, ok := r.orders[id]
		if !ok || o.Status == excluded {
			continue
		}
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		orders = append(orders, copyOrder(o))
	}
	return orders, nil
}

type fakeSettingsRepo struct {
	settings *model.BusinessSettings
}

func (r *fakeSettingsRepo) Find() (*model.BusinessSettings, error) {
	if r.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Upsert(settings *model.BusinessSettings) error {
	cp := *settings
	r.settings = &cp
	return nil
}
