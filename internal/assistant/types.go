package assistant

import (
	"time"

	"porter-saathi/internal/model"
)

// Kind is the response medium.
type Kind string

const (
	KindText  Kind = "text"
	KindAudio Kind = "audio"
)

// --- UseCase Inputs ---

// Request is one free-text query from a driver. An empty Language falls
// back to the configured default.
type Request struct {
	DriverID string
	Query    string
	Language string
}

type EmergencyInput struct {
	DriverID  string
	Location  string
	Type      string
	Timestamp time.Time // zero means now
}

type PutDriverInput struct {
	Driver model.Driver
}

// SetEarningsInput overwrites one ledger day. Day accepts YYYY-MM-DD or a
// relative expression such as "today" or "yesterday". When NetEarnings is
// nil it is derived as TotalEarnings - Expenses.
type SetEarningsInput struct {
	DriverID       string
	Day            string
	TotalEarnings  float64
	Expenses       float64
	NetEarnings    *float64
	CompletedTrips int
	Penalties      map[string]string
	Rewards        map[string]string
}

// --- UseCase Outputs ---

// Response is the assistant's reply. Only KindText is produced; AudioURL is
// reserved for a voice channel.
type Response struct {
	Text        string
	Kind        Kind
	AudioURL    string
	Suggestions map[string]string
}

type SetEarningsOutput struct {
	Date     model.Date
	Earnings model.DailyEarnings
}
