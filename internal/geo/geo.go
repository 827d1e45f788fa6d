// Package geo holds great-circle distance math and postal code extraction.
package geo

import (
	"math"
	"regexp"

	"courier-dispatch/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by HaversineKm.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between a and b in kilometres.
func HaversineKm(a, b domain.Point) float64 {
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if h > 1 {
		h = 1
	}
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TotalDeliveryDistance is the courier→restaurant leg plus the
// restaurant→customer leg.
func TotalDeliveryDistance(courier, restaurant, customer domain.Point) float64 {
	return HaversineKm(courier, restaurant) + HaversineKm(restaurant, customer)
}

// CourierDistance scores a courier against an order. Without a customer
// point only the restaurant leg counts.
func CourierDistance(courier, restaurant domain.Point, customer *domain.Point) float64 {
	if customer == nil {
		return HaversineKm(restaurant, courier)
	}
	return TotalDeliveryDistance(courier, restaurant, *customer)
}

var postalRe = regexp.MustCompile(`\b\d{5,6}\b`)

// ExtractPostalCode returns the first standalone 5 or 6 digit run in addr.
func ExtractPostalCode(addr string) (string, bool) {
	m := postalRe.FindString(addr)
	return m, m != ""
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
