package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"consulting360/internal/entities"
)

const publicBookEndpoint = "https://api.hubspot.com/meetings-public/v1/book"

// UpstreamError is a non-success response from the meetings API. The raw
// body is kept for diagnostics and surfaced in the message.
type UpstreamError struct {
	Op     string
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("HubSpot %s failed (%d): %s", e.Op, e.Status, e.Body)
}

// Client calls the HubSpot public meetings API for a single meeting-type
// slug. HubSpot ships no Go SDK for this surface, so the client is a plain
// HTTP wrapper.
type Client struct {
	Slug    string
	BaseURL string
	Client  *http.Client
}

func NewClient(slug string) *Client {
	return &Client{
		Slug:    slug,
		BaseURL: publicBookEndpoint,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchBookInfo retrieves raw availability for the configured slug. Any
// non-2xx response or unparseable body is a hard failure; a single attempt
// is made, retries are a caller concern.
func (c *Client) FetchBookInfo(ctx context.Context, now time.Time, timezone, location string) (*BookInfoResponse, error) {
	params := url.Values{}
	params.Set("slug", c.Slug)
	params.Set("now", strconv.FormatInt(now.UnixMilli(), 10))
	params.Set("includeInactiveLink", "true")
	params.Set("location", location)
	params.Set("timezone", timezone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HubSpot availability fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Op: "availability fetch", Status: resp.StatusCode, Body: string(body)}
	}

	var info BookInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("HubSpot availability response is not valid JSON: %w", err)
	}
	return &info, nil
}

// providerBookingBody is the exact wire shape the booking endpoint expects.
// Field order and the fixed defaults are part of the provider contract.
type providerBookingBody struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	FormFields  []any    `json:"formFields"`
	Offline     bool     `json:"offline"`
	Locale      string   `json:"locale"`
	Timezone    string   `json:"timezone"`
	Duration    int64    `json:"duration"`
	StartTime   int64    `json:"startTime"`
	GuestEmails []string `json:"guestEmails"`
}

// CreateBooking relays a booking to the provider and returns its
// confirmation verbatim. One attempt, no idempotency key: a retried failure
// can double-book upstream, which is the provider's dedup problem.
func (c *Client) CreateBooking(ctx context.Context, booking entities.BookingRequest) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("slug", c.Slug)

	payload := providerBookingBody{
		FirstName:   booking.FirstName,
		LastName:    booking.LastName,
		Email:       booking.Email,
		FormFields:  []any{},
		Offline:     false,
		Locale:      "en",
		Timezone:    booking.Timezone,
		Duration:    booking.Duration,
		StartTime:   booking.StartTime,
		GuestEmails: []string{},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"?"+params.Encode(), bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HubSpot booking failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Op: "booking", Status: resp.StatusCode, Body: string(body)}
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("HubSpot booking response is not valid JSON")
	}
	return json.RawMessage(body), nil
}
