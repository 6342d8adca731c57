package service

import (
	"log"
	"strings"
	"time"

	"rentacar/internal/entities"
	apperrors "rentacar/internal/errors"
	"rentacar/internal/repository"
)

const (
	statusPending  = "Pending"
	statusAccepted = "Accepted"

	defaultLocation = "Main Office (Batkhela, Malakand, KPK)"
	noEmailSentinel = "No email provided"
)

const (
	msgAcceptedEmailSent   = "Booking accepted and confirmation email sent to customer"
	msgAcceptedEmailFailed = "Booking accepted but email failed to send"
	msgAcceptedNoEmail     = "Booking accepted (no email sent, email not provided)"
)

type BookingService struct {
	Repo   *repository.BookingRepository
	sender *SenderService
}

func NewBookingService(repo *repository.BookingRepository, sender *SenderService) *BookingService {
	return &BookingService{Repo: repo, sender: sender}
}

// CheckAvailability reports whether the vehicle is free over the requested
// range. Dates are ISO strings compared lexically; the overlap test is
// inclusive on both ends.
func (s *BookingService) CheckAvailability(vehicle, pickupDate, returnDate string) bool {
	for _, b := range s.Repo.List() {
		if b.Vehicle == vehicle && pickupDate <= b.ReturnDate && returnDate >= b.PickupDate {
			return false
		}
	}
	return true
}

// CreateBooking stores the booking and then emails the office. The booking is
// durable before the notice goes out; a failed notice still fails the request.
func (s *BookingService) CreateBooking(req *entities.BookingRequest) (*entities.Booking, error) {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = defaultLocation
	}
	email := req.Email
	if email == "" {
		email = noEmailSentinel
	}

	booking := &entities.Booking{
		Vehicle:    req.Vehicle,
		PickupDate: req.PickupDate,
		ReturnDate: req.ReturnDate,
		Location:   location,
		Name:       req.Name,
		Email:      email,
		Contact:    req.Contact,
		Status:     statusPending,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Repo.Insert(booking); err != nil {
		log.Printf("Error creating booking in repository: %v", err)
		return nil, err
	}

	if err := s.sender.SendBookingNotice(*booking); err != nil {
		log.Printf("Error sending staff notice for booking %d: %v", booking.ID, err)
		return booking, apperrors.ErrNotificationFailure(err.Error())
	}
	return booking, nil
}

// ListBookings filters by a case-insensitive substring of query over name,
// contact, vehicle and location, and by exact status. Both filters are
// optional and compose with AND.
func (s *BookingService) ListBookings(query, status string) []entities.Booking {
	result := make([]entities.Booking, 0)
	ql := strings.ToLower(query)
	for _, b := range s.Repo.List() {
		if query != "" && !matchesQuery(b, ql) {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		result = append(result, b)
	}
	return result
}

func matchesQuery(b entities.Booking, ql string) bool {
	return strings.Contains(strings.ToLower(b.Name), ql) ||
		strings.Contains(strings.ToLower(b.Contact), ql) ||
		strings.Contains(strings.ToLower(b.Vehicle), ql) ||
		strings.Contains(strings.ToLower(b.Location), ql)
}

func (s *BookingService) UpdateBookingStatus(id int, status string) error {
	if _, err := s.Repo.Get(id); err != nil {
		return apperrors.ErrNotFound("Booking not found")
	}
	if status == "" {
		return apperrors.ErrInvalidInput("Invalid status")
	}
	return s.Repo.UpdateStatus(id, status)
}

// AcceptResult reports the outcome of an acceptance. EmailErr is set when the
// confirmation email failed; the acceptance itself already stands.
type AcceptResult struct {
	Message  string
	EmailErr error
}

// AcceptBooking marks the booking accepted and persists before any
// notification is attempted.
func (s *BookingService) AcceptBooking(id int) (*AcceptResult, error) {
	booking, err := s.Repo.Get(id)
	if err != nil {
		return nil, apperrors.ErrNotFound("Booking not found")
	}
	if err := s.Repo.UpdateStatus(id, statusAccepted); err != nil {
		return nil, err
	}
	booking.Status = statusAccepted

	s.sender.SendConfirmationSMS(*booking)

	if !strings.Contains(booking.Email, "@") {
		return &AcceptResult{Message: msgAcceptedNoEmail}, nil
	}
	if err := s.sender.SendConfirmationEmail(*booking); err != nil {
		log.Printf("Error sending confirmation email for booking %d: %v", id, err)
		return &AcceptResult{Message: msgAcceptedEmailFailed, EmailErr: err}, nil
	}
	return &AcceptResult{Message: msgAcceptedEmailSent}, nil
}

func (s *BookingService) DeleteBooking(id int) error {
	if err := s.Repo.Delete(id); err != nil {
		return apperrors.ErrNotFound("Booking not found")
	}
	return nil
}
