package handlers

import (
	"errors"
	"net/http"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// OfferHandler serves the courier-facing offer and delivery endpoints.
type OfferHandler struct {
	uc     offerUsecase
	logger logx.Logger
}

// NewOfferHandler wires an offer use case into HTTP handlers.
func NewOfferHandler(logger logx.Logger, uc offerUsecase) *OfferHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OfferHandler{uc: uc, logger: logger}
}

// Current handles GET /couriers/{id}/offer.
func (h *OfferHandler) Current(w http.ResponseWriter, r *http.Request) {
	courierID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.uc.Offer(r.Context(), courierID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, offerToResponse(o))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "no pending offer")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Accept handles POST /couriers/{id}/offer/accept?order_id=N.
func (h *OfferHandler) Accept(w http.ResponseWriter, r *http.Request) {
	courierID, orderID, ok := h.offerIDs(w, r)
	if !ok {
		return
	}

	err := h.uc.Accept(r.Context(), courierID, orderID)
	if err == nil {
		writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
			"order_id":   orderID,
			"courier_id": courierID,
			"status":     string(domain.AssignmentAccepted),
		})
		return
	}
	h.writeDecisionError(w, r, err)
}

// Decline handles POST /couriers/{id}/offer/decline?order_id=N.
func (h *OfferHandler) Decline(w http.ResponseWriter, r *http.Request) {
	courierID, orderID, ok := h.offerIDs(w, r)
	if !ok {
		return
	}

	res, err := h.uc.Decline(r.Context(), courierID, orderID)
	if err == nil {
		writeJSON(h.logger, w, r, http.StatusOK, declineResponse{
			Declined:        true,
			AssignedCourier: assignmentToResponse(res),
		})
		return
	}
	h.writeDecisionError(w, r, err)
}

// UpdateStatus handles PUT /couriers/{id}/orders/{orderID}/status.
func (h *OfferHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	courierID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	orderID, err := idFromURL(r, "orderID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order id")
		return
	}
	var req updateStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	err = h.uc.UpdateStatus(r.Context(), courierID, orderID, domain.OrderStatus(req.Status))
	if err == nil {
		writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
			"order_id": orderID,
			"status":   req.Status,
		})
		return
	}
	h.writeDecisionError(w, r, err)
}

// offerIDs reads the courier id from the path and the order id from the
// order_id query parameter.
func (h *OfferHandler) offerIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	courierID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return 0, 0, false
	}
	orderID, err := positiveID(r.URL.Query().Get("order_id"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid order_id")
		return 0, 0, false
	}
	return courierID, orderID, true
}

func (h *OfferHandler) writeDecisionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "order not found")
	case errors.Is(err, apperr.ErrAlreadyAccepted):
		writeError(h.logger, w, r, http.StatusConflict, "order already accepted")
	case errors.Is(err, apperr.ErrOrderClosed):
		writeError(h.logger, w, r, http.StatusConflict, "order closed")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict, "order is not offered to this courier")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
