package handlers

import (
	"time"

	"github.com/shopspring/decimal"
)

type pointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type courierDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Online     bool      `json:"online"`
	PostalCode string    `json:"postal_code,omitempty"`
	Location   *pointDTO `json:"location,omitempty"`
}

type createCourierRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"required"`
	PostalCode string `json:"postal_code" validate:"omitempty,numeric,min=5,max=6"`
}

type setOnlineRequest struct {
	Online *bool `json:"online" validate:"required"`
}

type updateLocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lon *float64 `json:"lon" validate:"required,longitude"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=picked_up out_for_delivery delivered"`
}

type createOrderRequest struct {
	CustomerName  string          `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string          `json:"customer_phone" validate:"required"`
	Address       string          `json:"address" validate:"required,max=500"`
	RestaurantID  int64           `json:"restaurant_id" validate:"required,gt=0"`
	Total         decimal.Decimal `json:"total"`
}

type orderDTO struct {
	ID               int64           `json:"id"`
	CustomerName     string          `json:"customer_name"`
	CustomerPhone    string          `json:"customer_phone"`
	Address          string          `json:"address"`
	RestaurantID     *int64          `json:"restaurant_id"`
	Total            decimal.Decimal `json:"total"`
	Status           string          `json:"status"`
	AssignmentStatus string          `json:"assignment_status"`
	CourierID        *int64          `json:"courier_id"`
	AssignmentTime   *time.Time      `json:"assignment_time"`
	CreatedAt        time.Time       `json:"created_at"`
}

type assignedCourierDTO struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DistanceKm   float64   `json:"distance_km"`
	ActiveOrders int       `json:"active_orders"`
	RoundRobin   bool      `json:"round_robin"`
	AssignedAt   time.Time `json:"assigned_at"`
}

type createOrderResponse struct {
	Order           orderDTO            `json:"order"`
	AssignedCourier *assignedCourierDTO `json:"assigned_courier"`
}

type reassignResponse struct {
	Success         bool                `json:"success"`
	AssignedCourier *assignedCourierDTO `json:"assigned_courier"`
	Message         string              `json:"message"`
}

type trackingDTO struct {
	OrderID          int64     `json:"order_id"`
	Status           string    `json:"status"`
	AssignmentStatus string    `json:"assignment_status"`
	CourierName      string    `json:"courier_name,omitempty"`
	CourierLocation  *pointDTO `json:"courier_location,omitempty"`
}

type offerDTO struct {
	OrderID      int64           `json:"order_id"`
	RestaurantID *int64          `json:"restaurant_id"`
	Address      string          `json:"address"`
	Total        decimal.Decimal `json:"total"`
	AssignedAt   time.Time       `json:"assigned_at"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

type declineResponse struct {
	Declined        bool                `json:"declined"`
	AssignedCourier *assignedCourierDTO `json:"assigned_courier"`
}
