package api

// Availability
type AvailabilityRequest struct {
	Vehicle    string `json:"vehicle"`
	PickupDate string `json:"pickupDate"`
	ReturnDate string `json:"returnDate"`
}
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// Booking
type BookResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type AcceptResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
