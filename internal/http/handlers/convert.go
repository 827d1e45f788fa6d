package handlers

import (
	"errors"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

func (r createCourierRequest) toModel() domain.NewCourier {
	return domain.NewCourier{
		Name:       r.Name,
		Phone:      r.Phone,
		PostalCode: r.PostalCode,
	}
}

func (r createOrderRequest) toModel() domain.NewOrder {
	return domain.NewOrder{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Address:       r.Address,
		RestaurantID:  r.RestaurantID,
		Total:         r.Total,
	}
}

func pointToResponse(p *domain.Point) *pointDTO {
	if p == nil {
		return nil
	}
	return &pointDTO{Lat: p.Lat, Lon: p.Lon}
}

func modelToResponse(c domain.Courier) courierDTO {
	return courierDTO{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Online:     c.Online,
		PostalCode: c.PostalCode,
		Location:   pointToResponse(c.Location),
	}
}

func modelsToResponse(list []domain.Courier) []courierDTO {
	out := make([]courierDTO, 0, len(list))
	for _, c := range list {
		out = append(out, modelToResponse(c))
	}
	return out
}

func orderToResponse(o domain.Order) orderDTO {
	return orderDTO{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		Address:          o.Address,
		RestaurantID:     o.RestaurantID,
		Total:            o.Total,
		Status:           string(o.Status),
		AssignmentStatus: string(o.AssignmentStatus),
		CourierID:        o.CourierID,
		AssignmentTime:   o.AssignmentTime,
		CreatedAt:        o.CreatedAt,
	}
}

func assignmentToResponse(a *domain.AssignResult) *assignedCourierDTO {
	if a == nil {
		return nil
	}
	return &assignedCourierDTO{
		ID:           a.Courier.ID,
		Name:         a.Courier.Name,
		DistanceKm:   a.DistanceKm,
		ActiveOrders: a.ActiveOrders,
		RoundRobin:   a.RoundRobin,
		AssignedAt:   a.AssignedAt,
	}
}

func trackingToResponse(t domain.Tracking) trackingDTO {
	return trackingDTO{
		OrderID:          t.OrderID,
		Status:           string(t.Status),
		AssignmentStatus: string(t.AssignmentStatus),
		CourierName:      t.CourierName,
		CourierLocation:  pointToResponse(t.CourierLocation),
	}
}

func offerToResponse(o domain.Offer) offerDTO {
	return offerDTO{
		OrderID:      o.OrderID,
		RestaurantID: o.RestaurantID,
		Address:      o.Address,
		Total:        o.Total,
		AssignedAt:   o.AssignedAt,
		ExpiresAt:    o.ExpiresAt,
	}
}

// assignFailure returns the caller-facing reason for an assignment outcome
// that left the order without a courier, or false for other errors.
func assignFailure(err error) (string, bool) {
	switch {
	case errors.Is(err, apperr.ErrNoCouriersExist):
		return "no couriers registered; order cancelled", true
	case errors.Is(err, apperr.ErrNoAvailableCourier):
		return "no available courier; order cancelled", true
	case errors.Is(err, apperr.ErrNoScorableCourier):
		return "no courier location could be resolved; will retry", true
	case errors.Is(err, apperr.ErrNoLocationData):
		return "restaurant location unknown; will retry", true
	}
	return "", false
}
