package service

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consulting360/internal/hubspot"
)

func rawSlot(startMillis, endMillis int64) hubspot.Slot {
	return hubspot.Slot{
		StartMillisUtc: json.RawMessage(fmt.Sprintf("%d", startMillis)),
		EndMillisUtc:   json.RawMessage(fmt.Sprintf("%d", endMillis)),
	}
}

func bookInfo(byDuration map[string]hubspot.DurationAvailability) *hubspot.BookInfoResponse {
	return &hubspot.BookInfoResponse{
		LinkAvailability: hubspot.LinkAvailability{LinkAvailabilityByDuration: byDuration},
	}
}

func TestResolveDayKey(t *testing.T) {
	// 2024-03-01T23:30:00Z is still March 1st in Los Angeles (UTC-8) but
	// already March 2nd in Tokyo (UTC+9).
	instant := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	cases := []struct {
		timezone string
		want     string
	}{
		{"America/Los_Angeles", "2024-03-01"},
		{"Asia/Tokyo", "2024-03-02"},
		{"UTC", "2024-03-01"},
	}
	for _, tc := range cases {
		t.Run(tc.timezone, func(t *testing.T) {
			got, ok := ResolveDayKey(instant, tc.timezone)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveDayKeyMalformedZone(t *testing.T) {
	_, ok := ResolveDayKey(time.Now(), "Not/AZone")
	assert.False(t, ok)
}

func TestAggregateMonthPicksShortestDuration(t *testing.T) {
	start := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC).UnixMilli()
	info := bookInfo(map[string]hubspot.DurationAvailability{
		"3600000": {Availabilities: []hubspot.Slot{rawSlot(start, start+3600000)}},
		"1800000": {Availabilities: []hubspot.Slot{rawSlot(start, start+1800000)}},
	})

	result := AggregateMonth(info, 2024, time.March, "UTC")
	assert.Equal(t, int64(1800000), result.DurationMs)
	require.Len(t, result.Days, 1)
	assert.Equal(t, "2024-03-05", result.Days[0].Date)
	assert.Equal(t, "2024-03-05T10:30:00.000Z", result.Days[0].Slots[0].End)
}

func TestAggregateMonthFiltersByLocalMonth(t *testing.T) {
	// Leap day noon UTC: February 29th everywhere relevant.
	leapDay := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC).UnixMilli()
	info := bookInfo(map[string]hubspot.DurationAvailability{
		"1800000": {Availabilities: []hubspot.Slot{rawSlot(leapDay, leapDay+1800000)}},
	})

	march := AggregateMonth(info, 2024, time.March, "UTC")
	assert.Empty(t, march.Days)
	// Duration selection is month-independent.
	assert.Equal(t, int64(1800000), march.DurationMs)

	february := AggregateMonth(info, 2024, time.February, "UTC")
	require.Len(t, february.Days, 1)
	assert.Equal(t, "2024-02-29", february.Days[0].Date)
}

func TestAggregateMonthBucketsInRequestZone(t *testing.T) {
	// Late-evening UTC slot lands on the next day in Tokyo.
	instant := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC).UnixMilli()
	info := bookInfo(map[string]hubspot.DurationAvailability{
		"1800000": {Availabilities: []hubspot.Slot{rawSlot(instant, instant+1800000)}},
	})

	tokyo := AggregateMonth(info, 2024, time.March, "Asia/Tokyo")
	require.Len(t, tokyo.Days, 1)
	assert.Equal(t, "2024-03-02", tokyo.Days[0].Date)

	losAngeles := AggregateMonth(info, 2024, time.March, "America/Los_Angeles")
	require.Len(t, losAngeles.Days, 1)
	assert.Equal(t, "2024-03-01", losAngeles.Days[0].Date)
}

func TestAggregateMonthOrdering(t *testing.T) {
	day1 := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	// Deliberately out of order on input.
	slots := []hubspot.Slot{
		rawSlot(day2.Add(2*time.Hour).UnixMilli(), day2.Add(2*time.Hour+30*time.Minute).UnixMilli()),
		rawSlot(day1.Add(4*time.Hour).UnixMilli(), day1.Add(4*time.Hour+30*time.Minute).UnixMilli()),
		rawSlot(day2.UnixMilli(), day2.Add(30*time.Minute).UnixMilli()),
		rawSlot(day1.UnixMilli(), day1.Add(30*time.Minute).UnixMilli()),
	}
	info := bookInfo(map[string]hubspot.DurationAvailability{
		"1800000": {Availabilities: slots},
	})

	result := AggregateMonth(info, 2024, time.March, "UTC")
	require.Len(t, result.Days, 2)
	assert.Equal(t, "2024-03-04", result.Days[0].Date)
	assert.Equal(t, "2024-03-12", result.Days[1].Date)
	for _, day := range result.Days {
		require.Len(t, day.Slots, 2)
		assert.Less(t, day.Slots[0].Start, day.Slots[1].Start)
	}
}

func TestAggregateMonthDropsMalformedSlots(t *testing.T) {
	base := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	slots := []hubspot.Slot{{
		StartMillisUtc: json.RawMessage(`"not-a-number"`),
		EndMillisUtc:   json.RawMessage(fmt.Sprintf("%d", base.UnixMilli())),
	}}
	for i := 0; i < 9; i++ {
		s := base.Add(time.Duration(i) * time.Hour)
		slots = append(slots, rawSlot(s.UnixMilli(), s.Add(30*time.Minute).UnixMilli()))
	}
	info := bookInfo(map[string]hubspot.DurationAvailability{
		"1800000": {Availabilities: slots},
	})

	result := AggregateMonth(info, 2024, time.March, "UTC")
	total := 0
	for _, day := range result.Days {
		total += len(day.Slots)
	}
	assert.Equal(t, 9, total)
}

func TestAggregateMonthEmptyAvailability(t *testing.T) {
	result := AggregateMonth(bookInfo(map[string]hubspot.DurationAvailability{}), 2024, time.March, "UTC")
	assert.Empty(t, result.Days)
	assert.Zero(t, result.DurationMs)

	// Absent map behaves the same.
	result = AggregateMonth(&hubspot.BookInfoResponse{}, 2024, time.March, "UTC")
	assert.Empty(t, result.Days)
	assert.Zero(t, result.DurationMs)

	// durationMs must be omitted, days must stay [] not null.
	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"days": []}`, string(encoded))
}

func TestAggregateMonthNonNumericDurationKeysIgnored(t *testing.T) {
	start := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC).UnixMilli()
	slot := rawSlot(start, start+1800000)

	// "NaN" and "Infinity" pass strconv.ParseFloat but are not finite
	// numbers; they must never become the canonical duration.
	cases := []struct {
		name string
		key  string
	}{
		{"word", "default"},
		{"nan", "NaN"},
		{"negative infinity", "-Infinity"},
		{"infinity", "Infinity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := bookInfo(map[string]hubspot.DurationAvailability{
				tc.key:    {},
				"1800000": {Availabilities: []hubspot.Slot{slot}},
			})

			result := AggregateMonth(info, 2024, time.March, "UTC")
			assert.Equal(t, int64(1800000), result.DurationMs)
			require.Len(t, result.Days, 1)
			assert.Equal(t, "2024-03-05", result.Days[0].Date)
		})
	}
}

func TestAggregateMonthUnloadableZoneDropsEverything(t *testing.T) {
	start := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC).UnixMilli()
	info := bookInfo(map[string]hubspot.DurationAvailability{
		"1800000": {Availabilities: []hubspot.Slot{rawSlot(start, start+1800000)}},
	})

	result := AggregateMonth(info, 2024, time.March, "Not/AZone")
	assert.Empty(t, result.Days)
	assert.Equal(t, int64(1800000), result.DurationMs)
}
