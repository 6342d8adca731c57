package repository

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"

	"rentacar/internal/entities"
)

// ErrBookingNotFound is returned when no booking has the requested id.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository owns the booking collection. The collection lives in
// memory; the JSON file is a mirror, loaded once at construction and
// rewritten wholesale after every mutation. All access goes through the
// mutex, so there is a single writer at a time.
type BookingRepository struct {
	path string

	mu       sync.Mutex
	bookings []entities.Booking
	nextID   int
}

func NewBookingRepository(path string) *BookingRepository {
	r := &BookingRepository{path: path, nextID: 1}
	r.load()
	return r
}

// load reads the durable file. A missing, unreadable or malformed file means
// no bookings yet; it never fails the caller.
func (r *BookingRepository) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return
	}
	var bookings []entities.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("Could not parse bookings file %s, starting empty: %v", r.path, err)
		return
	}
	r.bookings = bookings
	for _, b := range r.bookings {
		if b.ID >= r.nextID {
			r.nextID = b.ID + 1
		}
	}
}

// save must be called with the mutex held.
func (r *BookingRepository) save() error {
	data, err := json.MarshalIndent(r.bookings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}

// List returns a copy of the bookings in insertion order.
func (r *BookingRepository) List() []entities.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *BookingRepository) Get(id int) (*entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrBookingNotFound
}

// Insert assigns the next id, appends the booking and persists the
// collection. Ids are never reused within a run, even after deletes.
func (r *BookingRepository) Insert(b *entities.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, *b)
	return r.save()
}

func (r *BookingRepository) UpdateStatus(id int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			return r.save()
		}
	}
	return ErrBookingNotFound
}

func (r *BookingRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return r.save()
		}
	}
	return ErrBookingNotFound
}
