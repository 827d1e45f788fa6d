package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"courier-dispatch/internal/domain"
)

// RestaurantRepo reads order origins from admin_items.
type RestaurantRepo struct{ db *pgxpool.Pool }

// NewRestaurantRepo creates a new RestaurantRepo.
func NewRestaurantRepo(db *pgxpool.Pool) *RestaurantRepo { return &RestaurantRepo{db: db} }

// Get returns the restaurant or nil if it does not exist.
func (r *RestaurantRepo) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var (
		rs       domain.Restaurant
		lat, lon *float64
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, latitude, longitude, postal_code FROM admin_items WHERE id = $1`, id,
	).Scan(&rs.ID, &rs.Name, &lat, &lon, &rs.PostalCode)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, persistErr("get restaurant %d: %w", id, err)
	}
	rs.Location = pointOf(lat, lon)
	return &rs, nil
}

// Create inserts a restaurant and returns its id.
func (r *RestaurantRepo) Create(ctx context.Context, rs domain.Restaurant) (int64, error) {
	var lat, lon *float64
	if rs.Location != nil {
		lat, lon = &rs.Location.Lat, &rs.Location.Lon
	}
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO admin_items(name, latitude, longitude, postal_code) VALUES($1, $2, $3, $4) RETURNING id`,
		rs.Name, lat, lon, rs.PostalCode).Scan(&id)
	if err != nil {
		return 0, persistErr("create restaurant: %w", err)
	}
	return id, nil
}
