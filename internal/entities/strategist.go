package entities

// StrategistRequest is the inbound AI strategist payload. Email is optional
// and only used for lead notification.
type StrategistRequest struct {
	Input string `json:"input"`
	Email string `json:"email,omitempty"`
}

// StrategyAnalysis is the three-lens analysis produced by the model.
type StrategyAnalysis struct {
	Strategy   string `json:"strategy"`
	Operations string `json:"operations"`
	Legacy     string `json:"legacy"`
}
