package config

import (
	"net/url"
	"os"
	"strings"
)

const (
	defaultMeetingSlug  = "john2490"
	defaultMeetingsHost = "meetings.hubspot.com"
	defaultPort         = "8080"
)

// Config holds everything resolved from the environment at process start.
// It is built once in main and passed by reference into the services.
type Config struct {
	Port string

	MeetingSlug  string
	MeetingsHost string

	GeminiAPIKey string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	LeadNotifyEmail   string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioFromNumber     string
	BookingAlertToNumber string

	ProbeCron     string
	ProbeTimezone string
}

// Load resolves the configuration from the current environment. The meeting
// slug and host each fall through an ordered chain: explicit override, then
// the full meeting URL override, then the Vite-prefixed URL the frontend
// build uses, then a literal default.
func Load() *Config {
	return &Config{
		Port: getenv("PORT", defaultPort),

		MeetingSlug: ResolveMeetingSlug(
			os.Getenv("HUBSPOT_MEETING_SLUG"),
			os.Getenv("HUBSPOT_MEETING_URL"),
			os.Getenv("VITE_HUBSPOT_MEETING_URL"),
		),
		MeetingsHost: ResolveMeetingsHost(
			os.Getenv("HUBSPOT_MEETINGS_HOST"),
			os.Getenv("HUBSPOT_MEETING_URL"),
			os.Getenv("VITE_HUBSPOT_MEETING_URL"),
		),

		GeminiAPIKey: getenv("GEMINI_API_KEY", os.Getenv("VITE_GEMINI_API_KEY")),

		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:  getenv("SENDGRID_FROM_NAME", "360 Consulting Solutions"),
		LeadNotifyEmail:   os.Getenv("LEAD_NOTIFY_EMAIL"),

		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:     os.Getenv("TWILIO_FROM_NUMBER"),
		BookingAlertToNumber: os.Getenv("BOOKING_ALERT_TO_NUMBER"),

		ProbeCron:     os.Getenv("AVAILABILITY_PROBE_CRON"),
		ProbeTimezone: getenv("AVAILABILITY_PROBE_TIMEZONE", "America/New_York"),
	}
}

// ResolveMeetingSlug picks the meeting-type slug: explicit value first, then
// the last path segment of either meeting URL, then the default.
func ResolveMeetingSlug(explicit, meetingURL, viteMeetingURL string) string {
	if explicit != "" {
		return explicit
	}
	if slug := ParseSlug(meetingURL); slug != "" {
		return slug
	}
	if slug := ParseSlug(viteMeetingURL); slug != "" {
		return slug
	}
	return defaultMeetingSlug
}

// ResolveMeetingsHost picks the meetings host: explicit value first, then the
// host of either meeting URL, then the default.
func ResolveMeetingsHost(explicit, meetingURL, viteMeetingURL string) string {
	if explicit != "" {
		return explicit
	}
	if host := ParseHost(meetingURL); host != "" {
		return host
	}
	if host := ParseHost(viteMeetingURL); host != "" {
		return host
	}
	return defaultMeetingsHost
}

// ParseSlug extracts the last non-empty path segment of a meeting URL.
// Returns "" for empty or unparseable input.
func ParseSlug(meetingURL string) string {
	if meetingURL == "" {
		return ""
	}
	u, err := url.Parse(meetingURL)
	if err != nil || u.Host == "" {
		return ""
	}
	parts := strings.Split(u.Path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// ParseHost extracts the host of a meeting URL. Returns "" for empty or
// unparseable input.
func ParseHost(meetingURL string) string {
	if meetingURL == "" {
		return ""
	}
	u, err := url.Parse(meetingURL)
	if err != nil {
		return ""
	}
	return u.Host
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
