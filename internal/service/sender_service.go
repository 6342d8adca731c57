package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"rentacar/internal/entities"
)

// EmailSender delivers one email with plain-text and HTML bodies.
type EmailSender interface {
	Send(toEmail, toName, subject, plainBody, htmlBody string) error
}

// SMSSender delivers one text message.
type SMSSender interface {
	Send(toNumber, body string) error
}

// SenderService builds the outbound messages and hands them to the configured
// transports.
type SenderService struct {
	email      EmailSender
	sms        SMSSender
	staffEmail string
}

func NewSenderService(email EmailSender, sms SMSSender, staffEmail string) *SenderService {
	return &SenderService{email: email, sms: sms, staffEmail: staffEmail}
}

// SendBookingNotice emails the office about a new booking, all fields dumped
// into the body.
func (s *SenderService) SendBookingNotice(b entities.Booking) error {
	body := fmt.Sprintf(
		"Vehicle: %s\nPickup Date: %s\nReturn Date: %s\nLocation: %s\nName: %s\nEmail: %s\nContact: %s\n",
		b.Vehicle, b.PickupDate, b.ReturnDate, b.Location, b.Name, b.Email, b.Contact)
	return s.email.Send(s.staffEmail, "AK Rent A Car", "New Car Booking", body, body)
}

const confirmationEmailTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8f9fa;">
  <div style="text-align: center; background-color: #60a5fa; color: white; padding: 20px; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 24px;">🎉 Booking Confirmed!</h1>
  </div>
  <div style="background-color: white; padding: 30px; border-radius: 0 0 10px 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1);">
    <p style="font-size: 18px; color: #333;">Dear <strong>{{.Name}}</strong>,</p>
    <p style="font-size: 16px; color: #555;">Great news! Your car rental booking has been <strong>accepted</strong> and confirmed.</p>
    <div style="background-color: #f0f9ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #60a5fa;">
      <h3 style="color: #1e40af; margin-top: 0;">📋 Booking Details:</h3>
      <p><strong>Vehicle:</strong> {{.Vehicle}}</p>
      <p><strong>Pickup Date:</strong> {{.PickupDate}}</p>
      <p><strong>Return Date:</strong> {{.ReturnDate}}</p>
      <p><strong>Location:</strong> {{.Location}}</p>
      <p><strong>Contact:</strong> {{.Contact}}</p>
    </div>
    <p style="font-size: 16px; color: #555;">Please ensure you have the following documents ready for pickup:</p>
    <ul style="color: #555;">
      <li>Valid CNIC (National ID)</li>
      <li>Valid Driving License</li>
    </ul>
    <p style="font-size: 16px; color: #555;">If you have any questions or need to make changes, please contact us immediately.</p>
    <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
      <p style="color: #6b7280; font-size: 14px;">Thank you for choosing <strong>AK Rent A Car</strong>!</p>
      <p style="color: #6b7280; font-size: 14px;">📍 Main Office: Batkhela, Malakand, KPK</p>
      <p style="color: #6b7280; font-size: 14px;">📞 Contact: 0333-3323394 | 0300-5181628</p>
    </div>
  </div>
</div>
`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationEmailTemplate))

// SendConfirmationEmail sends the customer-facing acceptance email with an
// HTML body and a plain-text fallback.
func (s *SenderService) SendConfirmationEmail(b entities.Booking) error {
	data := entities.BookingEmailData{
		Name:       b.Name,
		Vehicle:    b.Vehicle,
		PickupDate: b.PickupDate,
		ReturnDate: b.ReturnDate,
		Location:   b.Location,
		Contact:    b.Contact,
	}

	var htmlBody bytes.Buffer
	if err := confirmationTmpl.Execute(&htmlBody, data); err != nil {
		log.Printf("Error rendering confirmation email for booking %d: %v", b.ID, err)
		return err
	}

	plainBody := fmt.Sprintf(
		"Dear %s,\n\nYour car rental booking has been ACCEPTED and confirmed!\n\n"+
			"Booking Details:\n"+
			"- Vehicle: %s\n"+
			"- Pickup Date: %s\n"+
			"- Return Date: %s\n"+
			"- Location: %s\n\n"+
			"Please ensure you have:\n"+
			"- Valid CNIC (National ID)\n"+
			"- Valid Driving License\n\n"+
			"If you have any questions, contact us at 0333-3323394.\n\n"+
			"Thank you for choosing AK Rent A Car!\n"+
			"Main Office: Batkhela, Malakand, KPK\n"+
			"Contact: 0333-3323394 | 0300-5181628\n",
		b.Name, b.Vehicle, b.PickupDate, b.ReturnDate, b.Location)

	return s.email.Send(b.Email, b.Name, "Your Booking is Confirmed! 🚗", plainBody, htmlBody.String())
}

// SendConfirmationSMS is best effort: a failed or unconfigured SMS never
// affects the acceptance outcome.
func (s *SenderService) SendConfirmationSMS(b entities.Booking) {
	if s.sms == nil || b.Contact == "" {
		return
	}
	msg := fmt.Sprintf("AK Rent A Car: your booking for %s (%s to %s) has been accepted. More details in your email.",
		b.Vehicle, b.PickupDate, b.ReturnDate)
	if err := s.sms.Send(b.Contact, msg); err != nil {
		log.Printf("Booking %d accepted, but the confirmation SMS to %s failed: %v", b.ID, b.Contact, err)
	}
}
