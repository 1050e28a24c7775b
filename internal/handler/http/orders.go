package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/internal/store"
	"github.com/MKhiriev/go-market-api/internal/utils"
	"github.com/MKhiriev/go-market-api/models"
)

// notFoundMessageForOrderUpdate names the resource an order update failed to
// resolve: the order row itself, or the user/product it was repointed at.
func notFoundMessageForOrderUpdate(err error) string {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, store.ErrProductNotFound):
		return "product not found"
	default:
		return "order not found"
	}
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	orders, err := h.services.OrderService.ListOrders(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listOrders").Msg("listing orders failed")
		writeError(w, err, nil)
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.OrderIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	createdOrder, err := h.services.OrderService.CreateOrder(r.Context(), in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createOrder").Msg("order creation failed")
		writeError(w, err, map[int]string{
			http.StatusConflict: "referenced user or product does not exist",
		})
		return
	}

	utils.WriteJSON(w, createdOrder, http.StatusOK)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, errorResponse{Message: "invalid id"}, http.StatusUnprocessableEntity)
		return
	}

	order, err := h.services.OrderService.GetOrder(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("order_id", id).Str("func", "*Handler.getOrder").Msg("getting order failed")
		writeError(w, err, map[int]string{
			http.StatusNotFound: "order not found",
		})
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, errorResponse{Message: "invalid id"}, http.StatusUnprocessableEntity)
		return
	}

	var in models.OrderIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.updateOrder").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// a missing order, user, or product all surface as 404 with a message
	// naming the resource the repository could not resolve
	updatedOrder, err := h.services.OrderService.UpdateOrder(r.Context(), id, in)
	if err != nil {
		log.Err(err).Int64("order_id", id).Str("func", "*Handler.updateOrder").Msg("order update failed")
		writeError(w, err, map[int]string{
			http.StatusNotFound: notFoundMessageForOrderUpdate(err),
		})
		return
	}

	utils.WriteJSON(w, updatedOrder, http.StatusOK)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, errorResponse{Message: "invalid id"}, http.StatusUnprocessableEntity)
		return
	}

	if err := h.services.OrderService.DeleteOrder(r.Context(), id); err != nil {
		log.Err(err).Int64("order_id", id).Str("func", "*Handler.deleteOrder").Msg("order deletion failed")
		writeError(w, err, map[int]string{
			http.StatusNotFound: "order not found",
		})
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{Message: "order deleted"}, http.StatusOK)
}
