package dispatch_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"courier-dispatch/internal/domain"
)

// world is an in-memory order store and courier pool.
type world struct {
	mu       sync.Mutex
	orders   map[int64]*domain.Order
	couriers map[int64]*domain.Courier
	active   map[int64]int
	saves    int
	countErr error
}

func newWorld() *world {
	return &world{
		orders:   make(map[int64]*domain.Order),
		couriers: make(map[int64]*domain.Courier),
		active:   make(map[int64]int),
	}
}

func (w *world) addCourier(c domain.Courier, active int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	cp := c
	w.couriers[c.ID] = &cp
	w.active[c.ID] = active
}

func (w *world) addOrder(o domain.Order) {
	w.mu.Lock()
	defer w.mu.Unlock()
	cp := o
	w.orders[o.ID] = &cp
}

func (w *world) order(id int64) domain.Order {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneOrder(*w.orders[id])
}

func (w *world) courier(id int64) domain.Courier {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.couriers[id]
}

func cloneOrder(o domain.Order) domain.Order {
	o.DeclinedIDs = append(domain.IDList{}, o.DeclinedIDs...)
	o.History = append(domain.IDList{}, o.History...)
	return o
}

func (w *world) sorted(filter func(*domain.Courier) bool) []domain.Courier {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.Courier, 0, len(w.couriers))
	for _, c := range w.couriers {
		if filter(c) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (w *world) ListOnline(context.Context) ([]domain.Courier, error) {
	return w.sorted(func(c *domain.Courier) bool { return c.Online }), nil
}

func (w *world) ListAll(context.Context) ([]domain.Courier, error) {
	return w.sorted(func(*domain.Courier) bool { return true }), nil
}

func (w *world) ActiveOrderCount(_ context.Context, id int64) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.countErr != nil {
		return 0, w.countErr
	}
	return w.active[id], nil
}

func (w *world) SetOnline(_ context.Context, id int64, online bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.couriers[id].Online = online
	return nil
}

func (w *world) Get(_ context.Context, id int64) (*domain.Order, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	o, ok := w.orders[id]
	if !ok {
		return nil, nil
	}
	cp := cloneOrder(*o)
	return &cp, nil
}

func assignable(o *domain.Order) bool {
	return !o.Accepted() && !o.Closed()
}

func (w *world) SaveAssignment(_ context.Context, u domain.AssignmentUpdate) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	o := w.orders[u.OrderID]
	if !assignable(o) {
		return false, nil
	}
	w.saves++
	courierID := u.CourierID
	at := u.AssignedAt
	o.CourierID = &courierID
	o.AssignmentStatus = domain.AssignmentPending
	o.AssignmentTime = &at
	o.DeclinedIDs = append(domain.IDList{}, u.DeclinedIDs...)
	o.History = append(domain.IDList{}, u.History...)
	return true, nil
}

func (w *world) ResetDeclined(_ context.Context, id int64) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	o := w.orders[id]
	if !assignable(o) {
		return false, nil
	}
	o.DeclinedIDs = domain.IDList{}
	o.AssignmentStatus = domain.AssignmentPending
	return true, nil
}

func (w *world) MarkUnfulfillable(_ context.Context, id int64) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	o := w.orders[id]
	if !assignable(o) {
		return false, nil
	}
	o.AssignmentStatus = domain.AssignmentNoDeliveryAvailable
	o.Status = domain.OrderCancelled
	return true, nil
}

// decline mimics a courier declining its offer.
func (w *world) decline(orderID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	o := w.orders[orderID]
	o.DeclinedIDs = o.DeclinedIDs.With(*o.CourierID)
	o.AssignmentStatus = domain.AssignmentDeclined
}

type restaurants map[int64]*domain.Restaurant

func (r restaurants) Get(_ context.Context, id int64) (*domain.Restaurant, error) {
	return r[id], nil
}

// postalBook is a fake geocoder keyed by postal code.
type postalBook struct {
	mu    sync.Mutex
	book  map[string]domain.Point
	calls []string
}

func (p *postalBook) Resolve(_ context.Context, postal, _ string) *domain.Point {
	p.mu.Lock()
	defer p.mu.Unlock()
	postal = strings.TrimSpace(postal)
	if postal == "" {
		return nil
	}
	p.calls = append(p.calls, postal)
	pt, ok := p.book[postal]
	if !ok {
		return nil
	}
	return &pt
}
