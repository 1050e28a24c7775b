package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-market-api/internal/logger"
	"github.com/MKhiriev/go-market-api/internal/utils"
	"github.com/MKhiriev/go-market-api/models"
)

// idFromRequest parses the {id} URL parameter of the matched chi route.
func idFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("listing users failed")
		writeError(w, err, nil)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var in models.UserIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.UserService.CreateUser(r.Context(), in)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("user creation failed")
		writeError(w, err, map[int]string{
			http.StatusConflict: "email already exists",
		})
		return
	}

	utils.WriteJSON(w, createdUser, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, errorResponse{Message: "invalid id"}, http.StatusUnprocessableEntity)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("user_id", id).Str("func", "*Handler.getUser").Msg("getting user failed")
		writeError(w, err, map[int]string{
			http.StatusNotFound: "user not found",
		})
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, errorResponse{Message: "invalid id"}, http.StatusUnprocessableEntity)
		return
	}

	var in models.UserIn
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, errorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(r.Context(), id, in)
	if err != nil {
		log.Err(err).Int64("user_id", id).Str("func", "*Handler.updateUser").Msg("user update failed")
		writeError(w, err, map[int]string{
			http.StatusNotFound: "user not found",
			http.StatusConflict: "email already exists",
		})
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, errorResponse{Message: "invalid id"}, http.StatusUnprocessableEntity)
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		log.Err(err).Int64("user_id", id).Str("func", "*Handler.deleteUser").Msg("user deletion failed")
		writeError(w, err, map[int]string{
			http.StatusNotFound: "user not found",
		})
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{Message: "user deleted"}, http.StatusOK)
}
