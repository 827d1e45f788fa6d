package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrPersistence marks failures of the persistent store.
var ErrPersistence = errors.New("persistence error")

// ErrAlreadyAccepted is returned when an order already has an accepted courier.
var ErrAlreadyAccepted = errors.New("order already accepted")

// ErrOrderClosed is returned for cancelled or delivered orders.
var ErrOrderClosed = errors.New("order closed")

// Assignment failure kinds.
var (
	ErrNoLocationData     = errors.New("no location data for restaurant")
	ErrNoCouriersExist    = errors.New("no couriers exist")
	ErrNoAvailableCourier = errors.New("no available courier")
	ErrNoScorableCourier  = errors.New("no courier could be geolocated")
	ErrGeocodeProvider    = errors.New("geocode provider error")
)

// Persistence wraps a store error so callers can match ErrPersistence.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrPersistence, err)
}

// IsTerminal reports whether an assignment failure makes the order unfulfillable.
// NoScorableCourier and NoLocationData are left for the next sweep.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrNoCouriersExist) || errors.Is(err, ErrNoAvailableCourier)
}
