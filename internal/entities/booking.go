package entities

// Booking is one reservation of a vehicle over an inclusive date range.
// The JSON tags are the wire and storage names; pickupDate and returnDate
// are ISO dates kept as strings and compared lexically.
type Booking struct {
	ID         int    `json:"id"`
	Vehicle    string `json:"vehicle"`
	PickupDate string `json:"pickupDate"`
	ReturnDate string `json:"returnDate"`
	Location   string `json:"location"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Contact    string `json:"contact"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

type BookingRequest struct {
	Vehicle    string `json:"vehicle"`
	PickupDate string `json:"pickupDate"`
	ReturnDate string `json:"returnDate"`
	Location   string `json:"location"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Contact    string `json:"contact"`
}
