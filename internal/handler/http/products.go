package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/internal/utils"
	"github.com/MKhiriev/go-market-api/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.ListProducts(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listProducts").Msg("listing products failed")
		writeError(w, err, nil)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.ProductIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createProduct").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	createdProduct, err := h.services.ProductService.CreateProduct(r.Context(), in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createProduct").Msg("product creation failed")
		writeError(w, err, nil)
		return
	}

	utils.WriteJSON(w, createdProduct, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, errorResponse{Message: "invalid id"}, http.StatusUnprocessableEntity)
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("product_id", id).Str("func", "*Handler.getProduct").Msg("getting product failed")
		writeError(w, err, map[int]string{
			http.StatusNotFound: "product not found",
		})
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, errorResponse{Message: "invalid id"}, http.StatusUnprocessableEntity)
		return
	}

	var in models.ProductIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.updateProduct").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updatedProduct, err := h.services.ProductService.UpdateProduct(r.Context(), id, in)
	if err != nil {
		log.Err(err).Int64("product_id", id).Str("func", "*Handler.updateProduct").Msg("product update failed")
		writeError(w, err, map[int]string{
			http.StatusNotFound: "product not found",
		})
		return
	}

	utils.WriteJSON(w, updatedProduct, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, errorResponse{Message: "invalid id"}, http.StatusUnprocessableEntity)
		return
	}

	if err := h.services.ProductService.DeleteProduct(r.Context(), id); err != nil {
		log.Err(err).Int64("product_id", id).Str("func", "*Handler.deleteProduct").Msg("product deletion failed")
		writeError(w, err, map[int]string{
			http.StatusNotFound: "product not found",
		})
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{Message: "product deleted"}, http.StatusOK)
}
