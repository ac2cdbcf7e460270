package domain

import "time"

// BatchResult holds the per-run counters of one Sync call.
type BatchResult struct {
	Total              int `json:"total"`
	Processed          int `json:"processed"`
	Inserted           int `json:"inserted"`
	Updated            int `json:"updated"`
	Skipped            int `json:"skipped"`
	ValidationRejected int `json:"validation_rejected"`
	Errored            int `json:"errored"`
	EnrichmentFailed   int `json:"enrichment_failed"`
}

// Attempted counts records that reached a terminal outcome.
func (r BatchResult) Attempted() int {
	return r.Processed + r.Skipped + r.ValidationRejected + r.Errored
}

// RunSummary is what gets remembered about the last run of a command.
type RunSummary struct {
	Entity     string      `json:"entity"`
	Status     string      `json:"status"` // ok|failed
	Error      string      `json:"error,omitempty"`
	Result     BatchResult `json:"result"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
}

const (
	RunStatusOK     = "ok"
	RunStatusFailed = "failed"
)

// FieldError is one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	EntityProducts   = "products"
	EntityCategories = "categories"
)
