package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting360/internal/config"
	"consulting360/internal/entities"
	apperrors "consulting360/internal/errors"
)

func TestGenerateStrategyWithoutCredential(t *testing.T) {
	svc := NewStrategistService("")
	_, err := svc.GenerateStrategy(context.Background(), "how do I scale?")
	require.Error(t, err)

	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, apperrors.KindConfiguration, httpErr.Kind)
	assert.Equal(t, "AI Module Offline: API Configuration Required.", httpErr.Message)
}

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"fenced", "```json\n{\"strategy\":\"x\"}\n```", `{"strategy":"x"}`},
		{"bare fences", "```\n{}\n```", "{}"},
		{"plain", `{"strategy":"x"}`, `{"strategy":"x"}`},
		{"whitespace", "  {}\n", "{}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripCodeFences(tc.in))
		})
	}
}

func TestSenderSkipsWhenUnconfigured(t *testing.T) {
	sender := NewSenderService(&config.Config{})

	// No credentials at all: both sends must be silent no-ops, not panics
	// or outbound calls.
	sender.SendLeadEmail("lead@example.com", "growth question")
	sender.SendBookingAlert(entities.BookingRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Timezone:  "UTC",
		Duration:  1800000,
		StartTime: 1709294400000,
	})
}
