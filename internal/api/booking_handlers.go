package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentacar/internal/entities"
	apperrors "rentacar/internal/errors"
	"rentacar/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	available := h.Service.CheckAvailability(req.Vehicle, req.PickupDate, req.ReturnDate)
	writeJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if _, err := h.Service.CreateBooking(&req); err != nil {
		writeJSON(w, httpStatus(err, http.StatusInternalServerError), BookResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, BookResponse{Success: true})
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	writeJSON(w, http.StatusOK, h.Service.ListBookings(q, status))
}

func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Booking not found"})
		return
	}
	var req StatusUpdateRequest
	// A missing or unreadable body counts as an empty status.
	json.NewDecoder(r.Body).Decode(&req)
	if err := h.Service.UpdateBookingStatus(id, req.Status); err != nil {
		writeJSON(w, httpStatus(err, http.StatusInternalServerError), ErrorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

func (h *BookingHandler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Booking not found"})
		return
	}
	result, err := h.Service.AcceptBooking(id)
	if err != nil {
		writeJSON(w, httpStatus(err, http.StatusInternalServerError), ErrorResponse{Error: err.Error()})
		return
	}
	resp := AcceptResponse{Success: true, Message: result.Message}
	if result.EmailErr != nil {
		resp.Error = result.EmailErr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
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

// bookingID parses the path id. Anything that does not parse as an integer
// can never match a stored booking.
func bookingID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, false
	}
	return id, true
}

func httpStatus(err error, fallback int) int {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return fallback
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
