package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/store"
	"github.com/campusmarket/campus-market/internal/utils"
	"github.com/go-chi/chi/v5"
)

// profile returns the public projection of any registered user. Any
// authenticated caller may view any profile; the password hash never leaves
// the store layer's model.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric user id")
		utils.WriteMessage(w, "User not found", http.StatusNotFound)
		return
	}

	foundUser, err := h.services.AuthService.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Int64("id", userID).Msg("user not found")
			utils.WriteMessage(w, "User not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", userID).Msg("unexpected error occurred while fetching profile")
		utils.WriteMessage(w, "Server error while fetching profile", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, foundUser.Public(), http.StatusOK)
}
