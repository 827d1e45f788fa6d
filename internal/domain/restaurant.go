package domain

// Restaurant is the origin of an order.
type Restaurant struct {
	ID         int64
	Name       string
	Location   *Point
	PostalCode string
}
