package entities

// BookingRequest is the inbound booking payload. Duration and StartTime are
// epoch milliseconds, matching what the scheduling provider's booking
// endpoint expects. No local validation is applied; the provider owns it.
type BookingRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Timezone  string `json:"timezone"`
	Duration  int64  `json:"duration"`
	StartTime int64  `json:"startTime"`
}
