package domain

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lon float64
}
