package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/logx"
)

// OrderHandler serves the customer and operator order endpoints.
type OrderHandler struct {
	uc     orderUsecase
	logger logx.Logger
}

// NewOrderHandler wires an order use case into HTTP handlers.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderHandler{uc: uc, logger: logger}
}

// Create handles POST /orders. The order is created even when no courier
// can be offered it yet; assigned_courier is then null.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p, err := h.uc.CreateOrder(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/orders/"+strconv.FormatInt(p.Order.ID, 10)+"/tracking")
		writeJSON(h.logger, w, r, http.StatusCreated, createOrderResponse{
			Order:           orderToResponse(p.Order),
			AssignedCourier: assignmentToResponse(p.Assignment),
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Tracking handles GET /orders/{id}/tracking.
func (h *OrderHandler) Tracking(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	t, err := h.uc.Tracking(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, trackingToResponse(t))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Reassign handles POST /orders/{id}/reassign.
func (h *OrderHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.uc.Reassign(r.Context(), id)
	if err == nil {
		writeJSON(h.logger, w, r, http.StatusOK, reassignResponse{
			Success:         true,
			AssignedCourier: assignmentToResponse(&res),
			Message:         "courier assigned",
		})
		return
	}
	if msg, ok := assignFailure(err); ok {
		writeJSON(h.logger, w, r, http.StatusOK, reassignResponse{Message: msg})
		return
	}
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	case errors.Is(err, apperr.ErrAlreadyAccepted):
		writeError(h.logger, w, r, http.StatusConflict, "order already accepted")
	case errors.Is(err, apperr.ErrOrderClosed):
		writeError(h.logger, w, r, http.StatusConflict, "order closed")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "order changed during reassignment")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
