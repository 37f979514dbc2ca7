package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/service"
	"github.com/campusmarket/campus-market/internal/store"
	"github.com/campusmarket/campus-market/internal/utils"
	"github.com/campusmarket/campus-market/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.CallerFromContext(ctx)
	if !ok {
		log.Error().Msg("no caller identity in context")
		utils.WriteMessage(w, "Server error while adding item", http.StatusInternalServerError)
		return
	}

	// AddItemRequest carries no seller field, so a seller_id supplied by the
	// client is dropped at decode time. The seller is always the caller.
	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.MarketplaceService.AddItem(ctx, caller.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingItemFields):
			log.Err(err).Msg("missing required item fields")
			utils.WriteMessage(w, "Title and price are required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred while adding item")
			utils.WriteMessage(w, "Server error while adding item", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, "Item added successfully", http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	listings, err := h.services.MarketplaceService.ListItems(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred while fetching items")
		utils.WriteMessage(w, "Server error while fetching items", http.StatusInternalServerError)
		return
	}

	if listings == nil {
		listings = []models.ItemListing{}
	}

	utils.WriteJSON(w, listings, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	caller, ok := utils.CallerFromContext(ctx)
	if !ok {
		log.Error().Msg("no caller identity in context")
		utils.WriteMessage(w, "Server error while deleting item", http.StatusInternalServerError)
		return
	}

	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("non-numeric item id")
		utils.WriteMessage(w, "Item not found", http.StatusNotFound)
		return
	}

	if err = h.services.MarketplaceService.DeleteItem(ctx, itemID, caller.UserID); err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			log.Err(err).Int64("item_id", itemID).Msg("item not found")
			utils.WriteMessage(w, "Item not found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrNotItemOwner):
			log.Err(err).Int64("item_id", itemID).Msg("delete attempt by non-owner")
			utils.WriteMessage(w, "Unauthorized", http.StatusForbidden)
			return
		default:
			log.Err(err).Int64("item_id", itemID).Msg("unexpected error occurred while deleting item")
			utils.WriteMessage(w, "Server error while deleting item", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, "Item deleted successfully", http.StatusOK)
}
