package realtime

import "encoding/json"

// Message types.
const (
	TypeVoiceCommand          = "voice-command"
	TypeVoiceResponse         = "voice-response"
	TypeEmergencyAlert        = "emergency-alert"
	TypeEmergencyAck          = "emergency-ack"
	TypeEmergencyNotification = "emergency-notification"
	TypeError                 = "error"
)

// Envelope is the frame exchanged in both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type voiceCommand struct {
	DriverID string `json:"driverId"`
	Query    string `json:"query"`
	Language string `json:"language"`
}

type emergencyAlert struct {
	DriverID      string `json:"driverId"`
	Location      string `json:"location"`
	EmergencyType string `json:"emergencyType"`
	Timestamp     string `json:"timestamp"` // RFC 3339, optional
}

type reply struct {
	Response    string            `json:"response"`
	Type        string            `json:"type"`
	AudioURL    string            `json:"audioUrl,omitempty"`
	Suggestions map[string]string `json:"suggestions"`
}

type errorPayload struct {
	Message string `json:"message"`
}
