package entities

type BookingEmailData struct {
	Name       string
	Vehicle    string
	PickupDate string
	ReturnDate string
	Location   string
	Contact    string
}
