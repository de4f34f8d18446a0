package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"consulting360/internal/entities"
	"consulting360/internal/hubspot"
)

// instantLayout is the fixed-width UTC rendering used for slot bounds.
// Width and zero-padding make lexicographic order chronological.
const instantLayout = "2006-01-02T15:04:05.000Z"

type AvailabilityService struct {
	Client       *hubspot.Client
	MeetingsHost string
}

func NewAvailabilityService(client *hubspot.Client, meetingsHost string) *AvailabilityService {
	return &AvailabilityService{Client: client, MeetingsHost: meetingsHost}
}

// MonthInfo fetches raw availability from the provider and reduces it to the
// day-bucketed shape for the requested month.
func (s *AvailabilityService) MonthInfo(ctx context.Context, month, timezone string) (*entities.MonthAvailability, error) {
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}

	info, err := s.Client.FetchBookInfo(ctx, time.Now(), timezone, s.MeetingsHost)
	if err != nil {
		return nil, err
	}

	return AggregateMonth(info, parsed.Year(), parsed.Month(), timezone), nil
}

// ResolveDayKey returns the YYYY-MM-DD calendar date instant falls on when
// rendered in the given IANA time zone. ok is false when the zone cannot be
// loaded; callers treat the instant as un-bucketable and skip it.
func ResolveDayKey(instant time.Time, timezone string) (string, bool) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", false
	}
	return instant.In(loc).Format("2006-01-02"), true
}

// AggregateMonth selects the canonical (shortest) duration, buckets its
// slots into calendar days under the request time zone, filters to the
// requested month and sorts days and intra-day slots ascending.
//
// Malformed slots and slots that cannot be bucketed are dropped, counted and
// logged; they never fail the aggregation. An empty or absent duration map
// is the valid "no availability configured" outcome, not an error.
func AggregateMonth(info *hubspot.BookInfoResponse, year int, month time.Month, timezone string) *entities.MonthAvailability {
	result := &entities.MonthAvailability{Days: []entities.DayAvailability{}}

	byDuration := info.LinkAvailability.LinkAvailabilityByDuration
	key, durationMs, ok := canonicalDuration(byDuration)
	if !ok {
		return result
	}
	result.DurationMs = durationMs

	monthPrefix := fmt.Sprintf("%04d-%02d", year, int(month))

	dayMap := make(map[string][]entities.AvailabilitySlot)
	dropped := 0
	for _, slot := range byDuration[key].Availabilities {
		start, end, ok := slot.Millis()
		if !ok {
			dropped++
			continue
		}
		dayKey, ok := ResolveDayKey(time.UnixMilli(start), timezone)
		if !ok {
			dropped++
			continue
		}
		if !strings.HasPrefix(dayKey, monthPrefix) {
			continue
		}
		dayMap[dayKey] = append(dayMap[dayKey], entities.AvailabilitySlot{
			Start: time.UnixMilli(start).UTC().Format(instantLayout),
			End:   time.UnixMilli(end).UTC().Format(instantLayout),
		})
	}
	if dropped > 0 {
		log.Printf("MonthInfo: dropped %d malformed or un-bucketable slots for month %s", dropped, monthPrefix)
	}

	for dayKey, slots := range dayMap {
		sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
		result.Days = append(result.Days, entities.DayAvailability{Date: dayKey, Slots: slots})
	}
	sort.Slice(result.Days, func(i, j int) bool { return result.Days[i].Date < result.Days[j].Date })

	return result
}

// canonicalDuration returns the smallest numeric duration key and its parsed
// value. A meeting type offering several durations is reduced to its
// shortest; zero and non-numeric keys count as no availability.
func canonicalDuration(byDuration map[string]hubspot.DurationAvailability) (string, int64, bool) {
	type durationKey struct {
		key string
		ms  int64
	}
	durations := make([]durationKey, 0, len(byDuration))
	for key := range byDuration {
		ms, err := strconv.ParseFloat(key, 64)
		if err != nil {
			continue
		}
		// ParseFloat accepts "NaN" and "Infinity"; only finite keys count.
		if math.IsNaN(ms) || math.IsInf(ms, 0) {
			continue
		}
		durations = append(durations, durationKey{key: key, ms: int64(ms)})
	}
	if len(durations) == 0 {
		return "", 0, false
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i].ms < durations[j].ms })
	if durations[0].ms == 0 {
		return "", 0, false
	}
	return durations[0].key, durations[0].ms, true
}
