package handlers

import (
	"net/http"

	"github.com/kijvolley/tournament-tracker/services"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ResetTournament(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.ResetTournament(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil)
	if err != nil {
		serverErrorResponse(w, r, err)
	}
}
