package hubspot

import (
	"encoding/json"
	"math"
)

// BookInfoResponse is the slice of the public book-info payload this system
// reads. Everything else in the provider response is ignored.
type BookInfoResponse struct {
	LinkAvailability LinkAvailability `json:"linkAvailability"`
}

type LinkAvailability struct {
	// Keyed by duration in milliseconds, as a decimal string.
	LinkAvailabilityByDuration map[string]DurationAvailability `json:"linkAvailabilityByDuration"`
}

type DurationAvailability struct {
	Availabilities []Slot `json:"availabilities"`
}

// Slot keeps the millis fields raw so one malformed slot never fails the
// decode of the whole list. Callers go through Millis.
type Slot struct {
	StartMillisUtc json.RawMessage `json:"startMillisUtc"`
	EndMillisUtc   json.RawMessage `json:"endMillisUtc"`
}

// Millis returns the slot bounds as epoch milliseconds. ok is false when
// either field is missing, not a finite number, or out of integer range;
// such slots are dropped by the aggregation.
func (s Slot) Millis() (start, end int64, ok bool) {
	start, ok = parseMillis(s.StartMillisUtc)
	if !ok {
		return 0, 0, false
	}
	end, ok = parseMillis(s.EndMillisUtc)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parseMillis(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	// Pointer target so a JSON null is distinguishable from zero.
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return 0, false
	}
	if math.IsNaN(*f) || math.IsInf(*f, 0) || *f < math.MinInt64 || *f > math.MaxInt64 {
		return 0, false
	}
	return int64(*f), true
}
