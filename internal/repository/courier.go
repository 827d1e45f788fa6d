package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

// CourierRepo stores delivery personnel.
type CourierRepo struct{ db *pgxpool.Pool }

// NewCourierRepo creates a new CourierRepo.
func NewCourierRepo(db *pgxpool.Pool) *CourierRepo { return &CourierRepo{db: db} }

const courierColumns = `id, name, phone, is_online, latitude, longitude, postal_code`

func scanCourier(row pgx.Row) (domain.Courier, error) {
	var (
		c        domain.Courier
		lat, lon *float64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Online, &lat, &lon, &c.PostalCode); err != nil {
		return domain.Courier{}, err
	}
	c.Location = pointOf(lat, lon)
	return c, nil
}

func pointOf(lat, lon *float64) *domain.Point {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Point{Lat: *lat, Lon: *lon}
}

// Get - returns courier by its ID, nil if it does not exist.
func (r *CourierRepo) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	c, err := scanCourier(r.db.QueryRow(ctx,
		`SELECT `+courierColumns+` FROM delivery_personnel WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, persistErr("get courier %d: %w", id, err)
	}
	return &c, nil
}

// List returns couriers ordered by id. If limit/offset are nil, returns the full list.
func (r *CourierRepo) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	q := `SELECT ` + courierColumns + ` FROM delivery_personnel ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}
	return r.query(ctx, "list couriers", q, args...)
}

// ListOnline returns online couriers ordered by id.
func (r *CourierRepo) ListOnline(ctx context.Context) ([]domain.Courier, error) {
	return r.query(ctx, "list online couriers",
		`SELECT `+courierColumns+` FROM delivery_personnel WHERE is_online ORDER BY id`)
}

// ListAll returns every courier ordered by id.
func (r *CourierRepo) ListAll(ctx context.Context) ([]domain.Courier, error) {
	return r.List(ctx, nil, nil)
}

func (r *CourierRepo) query(ctx context.Context, op, q string, args ...any) ([]domain.Courier, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, persistErr("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]domain.Courier, 0)
	for rows.Next() {
		c, err := scanCourier(rows)
		if err != nil {
			return nil, persistErr("%s: scan: %w", op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("%s: %w", op, err)
	}
	return out, nil
}

// Create - registers a new courier, offline and without coordinates.
func (r *CourierRepo) Create(ctx context.Context, c domain.NewCourier) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO delivery_personnel(name, phone, postal_code) VALUES($1, $2, $3) RETURNING id`,
		c.Name, c.Phone, c.PostalCode).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, persistErr("create courier: %w", err)
	}
	return id, nil
}

// SetOnline persists the online flag and reports whether the courier exists.
func (r *CourierRepo) SetOnline(ctx context.Context, id int64, online bool) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`UPDATE delivery_personnel SET is_online = $2, updated_at = now() WHERE id = $1`, id, online)
	if err != nil {
		return false, persistErr("set courier %d online=%t: %w", id, online, err)
	}
	return ct.RowsAffected() > 0, nil
}

// UpdateLocation stores the courier's current coordinates.
func (r *CourierRepo) UpdateLocation(ctx context.Context, id int64, p domain.Point) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE delivery_personnel
        SET latitude = $2, longitude = $3, updated_at = now()
        WHERE id = $1
    `, id, p.Lat, p.Lon)
	if err != nil {
		return false, persistErr("update courier %d location: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
