package model

// DefaultLanguage is the language code used when none is given.
const DefaultLanguage = "hi"

// Driver is a driver profile with its per-day earnings ledger.
type Driver struct {
	ID                 string
	Name               string
	Phone              string
	LanguagePreference string
	Vehicle            Vehicle
	EmergencyContact   *EmergencyContact
	Earnings           map[Date]DailyEarnings
}

// Vehicle is the vehicle a driver operates.
type Vehicle struct {
	Type              string `json:"type" yaml:"type"`
	Number            string `json:"number" yaml:"number"`
	InsuranceExpiry   string `json:"insurance_expiry" yaml:"insurance_expiry"`
	RegistrationDocID string `json:"registration_doc_id,omitempty" yaml:"registration_doc_id"`
}

// EmergencyContact is who gets notified when the driver raises an emergency.
type EmergencyContact struct {
	Name         string `json:"name" yaml:"name"`
	Phone        string `json:"phone" yaml:"phone"`
	Relationship string `json:"relationship" yaml:"relationship"`
}

// DailyEarnings is one day of a driver's ledger.
// NetEarnings is stored as given; producers keep it equal to TotalEarnings - Expenses.
type DailyEarnings struct {
	TotalEarnings  float64           `json:"total_earnings"`
	Expenses       float64           `json:"expenses"`
	NetEarnings    float64           `json:"net_earnings"`
	CompletedTrips int               `json:"completed_trips"`
	Penalties      map[string]string `json:"penalties"` // penalty id -> reason
	Rewards        map[string]string `json:"rewards"`   // reward id -> reason
}

// EarningsOn returns the record for day.
func (d Driver) EarningsOn(day Date) (DailyEarnings, bool) {
	e, ok := d.Earnings[day]
	return e, ok
}

// Clone returns a deep copy of d.
func (d Driver) Clone() Driver {
	out := d
	if d.EmergencyContact != nil {
		ec := *d.EmergencyContact
		out.EmergencyContact = &ec
	}
	out.Earnings = make(map[Date]DailyEarnings, len(d.Earnings))
	for day, e := range d.Earnings {
		out.Earnings[day] = e.Clone()
	}
	return out
}

// Clone returns a deep copy of e. Nil maps become empty maps.
func (e DailyEarnings) Clone() DailyEarnings {
	out := e
	out.Penalties = cloneStringMap(e.Penalties)
	out.Rewards = cloneStringMap(e.Rewards)
	return out
}

func cloneStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
