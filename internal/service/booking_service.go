package service

import (
	"context"
	"encoding/json"

	"consulting360/internal/entities"
	"consulting360/internal/hubspot"
)

// BookingService relays bookings to the scheduling provider. It performs no
// local validation; the provider owns email/name/slot checks.
type BookingService struct {
	Client *hubspot.Client
	Sender *SenderService
}

func NewBookingService(client *hubspot.Client, sender *SenderService) *BookingService {
	return &BookingService{Client: client, Sender: sender}
}

// CreateBooking forwards the booking and returns the provider confirmation
// verbatim. The owner alert is best-effort and never fails the booking.
func (s *BookingService) CreateBooking(ctx context.Context, req entities.BookingRequest) (json.RawMessage, error) {
	confirmation, err := s.Client.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}
	s.Sender.SendBookingAlert(req)
	return confirmation, nil
}
