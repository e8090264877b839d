package summary

import "time"

// Record is a generated summary together with the transcript it came from.
type Record struct {
	ID                string    `json:"id"`
	Transcript        string    `json:"transcript"`
	CustomInstruction *string   `json:"customInstruction"`
	Summary           string    `json:"summary"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewRecord holds the caller-supplied fields of a Record.
type NewRecord struct {
	Transcript        string
	CustomInstruction *string
	Summary           string
}

// GenerateRequest is the POST /api/generate-summary payload.
type GenerateRequest struct {
	Transcript        string  `json:"transcript" validate:"notblank"`
	CustomInstruction *string `json:"customInstruction,omitempty"`
}

// GenerateResponse is returned after a successful generation.
type GenerateResponse struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}
