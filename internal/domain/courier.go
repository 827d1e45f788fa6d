package domain

import "regexp"

// Courier represents a delivery person.
type Courier struct {
	ID         int64
	Name       string
	Phone      string
	Online     bool
	Location   *Point
	PostalCode string
}

// NewCourier carries the fields required to register a courier.
type NewCourier struct {
	Name       string
	Phone      string
	PostalCode string
}

// Candidate is a courier considered during one assignment attempt.
type Candidate struct {
	Courier      Courier
	ActiveOrders int
	DistanceKm   float64
}

var (
	rePhone      = regexp.MustCompile(`^\+[0-9]{10,15}$`)
	rePostalCode = regexp.MustCompile(`^[0-9]{5,6}$`)
)

// ValidatePhone validates the phone number format.
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}

// ValidatePostalCode reports whether s is a 5 or 6 digit postal code.
func ValidatePostalCode(s string) bool {
	return rePostalCode.MatchString(s)
}

// Valid reports whether p is a plausible WGS84 coordinate.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}
