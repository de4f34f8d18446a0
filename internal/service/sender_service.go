package service

import (
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"consulting360/internal/config"
	"consulting360/internal/entities"
)

// SenderService delivers owner notifications for leads and bookings. Every
// send is best-effort: missing credentials log a warning and skip, delivery
// failures are logged and swallowed. API responses never depend on it.
type SenderService struct {
	cfg *config.Config
}

func NewSenderService(cfg *config.Config) *SenderService {
	return &SenderService{cfg: cfg}
}

// SendLeadEmail notifies the site owner that the AI strategist captured a
// lead with a contact address.
func (s *SenderService) SendLeadEmail(leadEmail, input string) {
	subject := fmt.Sprintf("New AI Strategist lead: %s", leadEmail)
	body := fmt.Sprintf("Lead email: %s\n\nWhat they asked:\n%s\n", leadEmail, input)
	s.sendEmail(subject, body)
}

// SendBookingAlert notifies the site owner about a booking that HubSpot just
// confirmed, by email and SMS.
func (s *SenderService) SendBookingAlert(booking entities.BookingRequest) {
	start := time.UnixMilli(booking.StartTime).UTC().Format("02 Jan 2006 15:04 MST")
	subject := fmt.Sprintf("New consultation booked: %s %s", booking.FirstName, booking.LastName)
	body := fmt.Sprintf(
		"%s %s (%s) booked a %d minute consultation.\nStart: %s\nClient timezone: %s\n",
		booking.FirstName, booking.LastName, booking.Email,
		booking.Duration/60000, start, booking.Timezone,
	)
	s.sendEmail(subject, body)
	s.sendSMS(fmt.Sprintf("New booking: %s %s, %s (%s)", booking.FirstName, booking.LastName, start, booking.Email))
}

func (s *SenderService) sendEmail(subject, plainTextContent string) {
	if s.cfg.SendGridAPIKey == "" || s.cfg.SendGridFromEmail == "" || s.cfg.LeadNotifyEmail == "" {
		log.Println("WARNING: SendGrid not fully configured, notification email skipped")
		return
	}

	from := mail.NewEmail(s.cfg.SendGridFromName, s.cfg.SendGridFromEmail)
	to := mail.NewEmail("", s.cfg.LeadNotifyEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, "")

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending notification email via SendGrid: %v", err)
		return
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		log.Printf("SendGrid returned non-success status %d: %s", response.StatusCode, response.Body)
		return
	}
	log.Printf("Notification email sent (subject: %s)", subject)
}

func (s *SenderService) sendSMS(messageBody string) {
	if s.cfg.TwilioAccountSID == "" || s.cfg.TwilioAuthToken == "" ||
		s.cfg.TwilioFromNumber == "" || s.cfg.BookingAlertToNumber == "" {
		log.Println("WARNING: Twilio not fully configured, notification SMS skipped")
		return
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.cfg.TwilioAccountSID,
		Password: s.cfg.TwilioAuthToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(s.cfg.BookingAlertToNumber)
	params.SetFrom(s.cfg.TwilioFromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Error sending notification SMS via Twilio: %v", err)
		return
	}
	if resp != nil && resp.Sid != nil {
		log.Printf("Notification SMS sent, SID: %s", *resp.Sid)
	}
}
