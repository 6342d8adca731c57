package api

import (
	"encoding/json"
	"net/http"

	"rentacar/internal/service"
)

type AdminHandler struct {
	Service *service.BookingService
}

func NewAdminHandler(svc *service.BookingService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	writeJSON(w, http.StatusOK, h.Service.ListBookings(q, status))
}

func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Booking not found"})
		return
	}
	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateBookingStatus(id, req.Status); err != nil {
		writeJSON(w, httpStatus(err, http.StatusInternalServerError), ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Booking not found"})
		return
	}
	if err := h.Service.DeleteBooking(id); err != nil {
		writeJSON(w, httpStatus(err, http.StatusInternalServerError), ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
