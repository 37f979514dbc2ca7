package http

import (
	"net/http"

	"github.com/campusmarket/campus-market/internal/utils"
)

// dashboard confirms an authenticated session. The body is static; the
// endpoint exists so clients can cheaply probe token validity.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, "Welcome to your dashboard", http.StatusOK)
}
