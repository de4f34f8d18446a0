package entities

// AvailabilitySlot is one bookable window, both ends rendered as fixed-width
// UTC instants so lexicographic order matches chronological order.
type AvailabilitySlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayAvailability groups the slots whose start instant falls on Date in the
// requested time zone. Slots are sorted ascending by start.
type DayAvailability struct {
	Date  string             `json:"date"`
	Slots []AvailabilitySlot `json:"slots"`
}

// MonthAvailability is the MonthInfo response. Days are sorted ascending by
// date and restricted to the requested month. DurationMs is the shortest
// duration the meeting type offers; zero means no availability is configured
// and is omitted from the JSON.
type MonthAvailability struct {
	Days       []DayAvailability `json:"days"`
	DurationMs int64             `json:"durationMs,omitempty"`
}
