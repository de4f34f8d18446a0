package service

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ProbeService periodically fetches the current month's availability so
// upstream breakage shows up in the logs before a visitor hits it. Wired to
// a cron schedule in main when AVAILABILITY_PROBE_CRON is set.
type ProbeService struct {
	Availability *AvailabilityService
	Timezone     string
}

func NewProbeService(availability *AvailabilityService, timezone string) *ProbeService {
	return &ProbeService{Availability: availability, Timezone: timezone}
}

// CheckUpstream fetches availability for the current month and logs a
// summary.
func (s *ProbeService) CheckUpstream() error {
	log.Println("Probe: checking upstream availability...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	month := time.Now().UTC().Format("2006-01")
	result, err := s.Availability.MonthInfo(ctx, month, s.Timezone)
	if err != nil {
		return fmt.Errorf("probe: upstream availability check failed: %w", err)
	}

	slots := 0
	for _, day := range result.Days {
		slots += len(day.Slots)
	}
	log.Printf("Probe: %s has %d days with %d slots (duration %dms)", month, len(result.Days), slots, result.DurationMs)
	return nil
}
