package emergency

import (
	"time"

	"github.com/google/uuid"
)

// Alert types.
const (
	TypeSOS = "sos"
)

// Alert is an emergency raised by a driver.
type Alert struct {
	ID           string    `json:"id"`
	DriverID     string    `json:"driver_id"`
	DriverName   string    `json:"driver_name"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Relationship string    `json:"relationship,omitempty"`
	Location     string    `json:"location,omitempty"`
	Type         string    `json:"type"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewAlert returns an Alert with a fresh id. An empty type defaults to TypeSOS.
func NewAlert(driverID, driverName, alertType string, at time.Time) Alert {
	if alertType == "" {
		alertType = TypeSOS
	}
	return Alert{
		ID:         uuid.NewString(),
		DriverID:   driverID,
		DriverName: driverName,
		Type:       alertType,
		Timestamp:  at,
	}
}
