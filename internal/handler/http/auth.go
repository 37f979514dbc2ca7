package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/service"
	"github.com/campusmarket/campus-market/internal/store"
	"github.com/campusmarket/campus-market/internal/utils"
	"github.com/campusmarket/campus-market/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	log.Debug().Str("prn", req.PRN).Str("name", req.Name).Msg("signup request received")

	_, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMalformedPRN):
			log.Err(err).Msg("malformed prn")
			utils.WriteMessage(w, "PRN must be exactly 12 digits", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrNotEligibleStudent):
			log.Err(err).Msg("student details do not match the roster")
			utils.WriteMessage(w, "Invalid student details. Please enter correct information.", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrPRNAlreadyRegistered):
			log.Err(err).Msg("prn already registered")
			utils.WriteMessage(w, "User already registered. Please login to continue.", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteMessage(w, "Invalid student details. Please enter correct information.", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteMessage(w, "Server error during signup", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteMessage(w, "User registered successfully", http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.PRN, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotRegistered):
			log.Err(err).Str("prn", req.PRN).Msg("prn is not registered")
			utils.WriteMessage(w, "User not registered. Please signup first.", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword), errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("prn", req.PRN).Msg("wrong password")
			utils.WriteMessage(w, "Invalid password", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteMessage(w, "Server error during login", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, "Server error during login", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Message: "Login successful",
		Token:   token.SignedString,
		User:    foundUser.Public(),
	}, http.StatusOK)
}
