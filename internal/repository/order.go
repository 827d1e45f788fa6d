package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"courier-dispatch/internal/domain"
)

// OrderRepo stores orders and their assignment state.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

const orderColumns = `id, customer_name, customer_phone, address, restaurant_id, total::text, status,
    COALESCE(assignment_status, ''), delivery_person_id, assignment_time,
    declined_delivery_person_ids, assignment_history, created_at, updated_at`

// Assignment writes never touch accepted or finished orders.
const assignable = `assignment_status IS DISTINCT FROM 'accepted' AND status NOT IN ('cancelled', 'delivered')`

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		o                 domain.Order
		total             string
		status, assign    string
		declined, history string
	)
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.Address, &o.RestaurantID, &total, &status,
		&assign, &o.CourierID, &o.AssignmentTime, &declined, &history, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	o.Total, err = decimal.NewFromString(total)
	if err != nil {
		return domain.Order{}, err
	}
	o.Status = domain.OrderStatus(status)
	o.AssignmentStatus = domain.AssignmentStatus(assign)
	o.DeclinedIDs = decodeIDs(declined)
	o.History = decodeIDs(history)
	return o, nil
}

// Create inserts a new unassigned order.
func (r *OrderRepo) Create(ctx context.Context, n domain.NewOrder) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `
        INSERT INTO orders (customer_name, customer_phone, address, restaurant_id, total, status)
        VALUES ($1, $2, $3, $4, $5::numeric, $6)
        RETURNING `+orderColumns,
		n.CustomerName, n.CustomerPhone, n.Address, n.RestaurantID, n.Total.String(), string(domain.OrderPending)))
	if err != nil {
		return nil, persistErr("create order: %w", err)
	}
	return &o, nil
}

// Get returns the order or nil if it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, persistErr("get order %d: %w", id, err)
	}
	return &o, nil
}

// SaveAssignment persists an engine decision. It reports false when the
// order was accepted or closed in the meantime.
func (r *OrderRepo) SaveAssignment(ctx context.Context, u domain.AssignmentUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET delivery_person_id           = $2,
            assignment_status            = 'pending_acceptance',
            assignment_time              = $3,
            declined_delivery_person_ids = $4,
            assignment_history           = $5,
            updated_at                   = now()
        WHERE id = $1 AND `+assignable,
		u.OrderID, u.CourierID, u.AssignedAt, encodeIDs(u.DeclinedIDs), encodeIDs(u.History))
	if err != nil {
		return false, persistErr("save assignment for order %d: %w", u.OrderID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// ResetDeclined clears the decline set after a full cycle.
func (r *OrderRepo) ResetDeclined(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET declined_delivery_person_ids = '[]',
            assignment_status            = 'pending_acceptance',
            updated_at                   = now()
        WHERE id = $1 AND `+assignable, id)
	if err != nil {
		return false, persistErr("reset declined for order %d: %w", id, err)
	}
	return ct.RowsAffected() == 1, nil
}

// MarkUnfulfillable cancels an order nobody can deliver.
func (r *OrderRepo) MarkUnfulfillable(ctx context.Context, id int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET assignment_status = 'no_delivery_available',
            status            = 'cancelled',
            updated_at        = now()
        WHERE id = $1 AND `+assignable, id)
	if err != nil {
		return false, persistErr("mark order %d unfulfillable: %w", id, err)
	}
	return ct.RowsAffected() == 1, nil
}

// Accept records the courier's acceptance of its pending offer.
func (r *OrderRepo) Accept(ctx context.Context, orderID, courierID int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET assignment_status = 'accepted',
            status            = 'confirmed',
            updated_at        = now()
        WHERE id = $1
          AND delivery_person_id = $2
          AND assignment_status = 'pending_acceptance'
          AND status NOT IN ('cancelled', 'delivered')
    `, orderID, courierID)
	if err != nil {
		return false, persistErr("accept order %d: %w", orderID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// Decline moves the courier's pending offer to declined and adds the courier
// to the decline set.
func (r *OrderRepo) Decline(ctx context.Context, orderID, courierID int64) (bool, error) {
	return r.declineIf(ctx, orderID, courierID, func(*domain.Order) bool { return true })
}

// ExpireOffer declines an offer on the courier's behalf, but only if the
// order still carries the exact offer observed at assignedAt.
func (r *OrderRepo) ExpireOffer(ctx context.Context, orderID, courierID int64, assignedAt time.Time) (bool, error) {
	return r.declineIf(ctx, orderID, courierID, func(o *domain.Order) bool {
		return o.AssignmentTime != nil && o.AssignmentTime.Equal(assignedAt)
	})
}

func (r *OrderRepo) declineIf(ctx context.Context, orderID, courierID int64, match func(*domain.Order) bool) (bool, error) {
	var applied bool
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		o, err := scanOrder(tx.QueryRow(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID))
		if err != nil {
			if IsNotFound(err) {
				return nil
			}
			return err
		}
		if o.AssignmentStatus != domain.AssignmentPending ||
			o.CourierID == nil || *o.CourierID != courierID ||
			o.Closed() || !match(&o) {
			return nil
		}

		_, err = tx.Exec(ctx, `
            UPDATE orders
            SET declined_delivery_person_ids = $2,
                assignment_status            = 'declined',
                updated_at                   = now()
            WHERE id = $1
        `, orderID, encodeIDs(o.DeclinedIDs.With(courierID)))
		if err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, persistErr("decline order %d for courier %d: %w", orderID, courierID, err)
	}
	return applied, nil
}

// UpdateStatus lets the accepted courier advance the order lifecycle.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID, courierID int64, status domain.OrderStatus) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = $3, updated_at = now()
        WHERE id = $1
          AND delivery_person_id = $2
          AND assignment_status = 'accepted'
          AND status NOT IN ('cancelled', 'delivered')
    `, orderID, courierID, string(status))
	if err != nil {
		return false, persistErr("update order %d status: %w", orderID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// CountActive counts the courier's orders whose status is in statuses.
func (r *OrderRepo) CountActive(ctx context.Context, courierID int64, statuses []string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE delivery_person_id = $1 AND status = ANY($2)`,
		courierID, statuses).Scan(&n)
	if err != nil {
		return 0, persistErr("count active orders for courier %d: %w", courierID, err)
	}
	return n, nil
}

// ListExpiredOffers returns pending offers assigned before the cutoff.
func (r *OrderRepo) ListExpiredOffers(ctx context.Context, before time.Time) ([]domain.Order, error) {
	return r.query(ctx, "list expired offers", `
        SELECT `+orderColumns+`
        FROM orders
        WHERE assignment_status = 'pending_acceptance'
          AND assignment_time < $1
          AND status NOT IN ('cancelled', 'delivered')
        ORDER BY assignment_time, id
    `, before)
}

// ListStalled returns orders left declined or never assigned since before.
func (r *OrderRepo) ListStalled(ctx context.Context, before time.Time) ([]domain.Order, error) {
	return r.query(ctx, "list stalled orders", `
        SELECT `+orderColumns+`
        FROM orders
        WHERE COALESCE(assignment_status, '') IN ('', 'declined')
          AND status NOT IN ('cancelled', 'delivered')
          AND restaurant_id IS NOT NULL
          AND updated_at < $1
        ORDER BY updated_at, id
    `, before)
}

// PendingOfferFor returns the courier's most recent pending offer, or nil.
func (r *OrderRepo) PendingOfferFor(ctx context.Context, courierID int64) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE delivery_person_id = $1
          AND assignment_status = 'pending_acceptance'
          AND status NOT IN ('cancelled', 'delivered')
        ORDER BY assignment_time DESC
        LIMIT 1
    `, courierID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, persistErr("pending offer for courier %d: %w", courierID, err)
	}
	return &o, nil
}

func (r *OrderRepo) query(ctx context.Context, op, q string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, persistErr("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, persistErr("%s: scan: %w", op, err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("%s: %w", op, err)
	}
	return out, nil
}
