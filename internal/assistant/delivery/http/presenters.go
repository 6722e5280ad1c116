package http

import (
	"sort"

	"porter-saathi/internal/assistant"
	"porter-saathi/internal/model"
)

// Reply texts used when the assistant cannot answer at all.
const (
	msgQueryFailed     = "Sorry, I'm having trouble processing your request. Please try again."
	msgEmergencyFailed = "Emergency alert failed. Please try again or call directly."
)

// --- Request DTOs ---

type queryReq struct {
	DriverID string `json:"driverId" binding:"required"`
	Query    string `json:"query"`
	Language string `json:"language"`
}

func (r queryReq) toInput() assistant.Request {
	return assistant.Request{
		DriverID: r.DriverID,
		Query:    r.Query,
		Language: r.Language,
	}
}

type emergencyReq struct {
	DriverID string `json:"-"`
	Location string `json:"location"`
	Type     string `json:"emergencyType"`
}

func (r emergencyReq) toInput() assistant.EmergencyInput {
	return assistant.EmergencyInput{
		DriverID: r.DriverID,
		Location: r.Location,
		Type:     r.Type,
	}
}

type vehicleDTO struct {
	Type              string `json:"type"`
	Number            string `json:"number"`
	InsuranceExpiry   string `json:"insuranceExpiry"`
	RegistrationDocID string `json:"registrationDocId,omitempty"`
}

type emergencyContactDTO struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type upsertDriverReq struct {
	ID                 string               `json:"-"`
	Name               string               `json:"name"  binding:"required,max=255"`
	Phone              string               `json:"phone" binding:"max=32"`
	LanguagePreference string               `json:"languagePreference" binding:"omitempty,oneof=hi en"`
	Vehicle            vehicleDTO           `json:"vehicle"`
	EmergencyContact   *emergencyContactDTO `json:"emergencyContact"`
}

func (r upsertDriverReq) toInput() assistant.PutDriverInput {
	d := model.Driver{
		ID:                 r.ID,
		Name:               r.Name,
		Phone:              r.Phone,
		LanguagePreference: r.LanguagePreference,
		Vehicle: model.Vehicle{
			Type:              r.Vehicle.Type,
			Number:            r.Vehicle.Number,
			InsuranceExpiry:   r.Vehicle.InsuranceExpiry,
			RegistrationDocID: r.Vehicle.RegistrationDocID,
		},
	}
	if c := r.EmergencyContact; c != nil {
		d.EmergencyContact = &model.EmergencyContact{Name: c.Name, Phone: c.Phone, Relationship: c.Relationship}
	}
	return assistant.PutDriverInput{Driver: d}
}

type setEarningsReq struct {
	DriverID       string            `json:"-"`
	Day            string            `json:"-"`
	TotalEarnings  float64           `json:"totalEarnings"  binding:"gte=0"`
	Expenses       float64           `json:"expenses"       binding:"gte=0"`
	NetEarnings    *float64          `json:"netEarnings"`
	CompletedTrips int               `json:"completedTrips" binding:"gte=0"`
	Penalties      map[string]string `json:"penalties"`
	Rewards        map[string]string `json:"rewards"`
}

func (r setEarningsReq) toInput() assistant.SetEarningsInput {
	return assistant.SetEarningsInput{
		DriverID:       r.DriverID,
		Day:            r.Day,
		TotalEarnings:  r.TotalEarnings,
		Expenses:       r.Expenses,
		NetEarnings:    r.NetEarnings,
		CompletedTrips: r.CompletedTrips,
		Penalties:      r.Penalties,
		Rewards:        r.Rewards,
	}
}

// --- Response DTOs ---

type queryResp struct {
	Response    string            `json:"response"`
	Type        string            `json:"type"`
	AudioURL    string            `json:"audioUrl,omitempty"`
	Suggestions map[string]string `json:"suggestions"`
}

func (h *handler) newQueryResp(r assistant.Response) queryResp {
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = map[string]string{}
	}
	return queryResp{
		Response:    r.Text,
		Type:        string(r.Kind),
		AudioURL:    r.AudioURL,
		Suggestions: suggestions,
	}
}

type earningsResp struct {
	Date           string            `json:"date"`
	TotalEarnings  float64           `json:"totalEarnings"`
	Expenses       float64           `json:"expenses"`
	NetEarnings    float64           `json:"netEarnings"`
	CompletedTrips int               `json:"completedTrips"`
	Penalties      map[string]string `json:"penalties"`
	Rewards        map[string]string `json:"rewards"`
}

func newEarningsResp(day model.Date, e model.DailyEarnings) earningsResp {
	e = e.Clone()
	return earningsResp{
		Date:           day.String(),
		TotalEarnings:  e.TotalEarnings,
		Expenses:       e.Expenses,
		NetEarnings:    e.NetEarnings,
		CompletedTrips: e.CompletedTrips,
		Penalties:      e.Penalties,
		Rewards:        e.Rewards,
	}
}

type driverResp struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Phone              string               `json:"phone"`
	LanguagePreference string               `json:"languagePreference"`
	Vehicle            vehicleDTO           `json:"vehicle"`
	EmergencyContact   *emergencyContactDTO `json:"emergencyContact,omitempty"`
	Earnings           []earningsResp       `json:"earnings"`
}

// newDriverResp lists the ledger newest day first.
func (h *handler) newDriverResp(d model.Driver) driverResp {
	days := make([]model.Date, 0, len(d.Earnings))
	for day := range d.Earnings {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].String() > days[j].String()
	})

	earnings := make([]earningsResp, 0, len(days))
	for _, day := range days {
		earnings = append(earnings, newEarningsResp(day, d.Earnings[day]))
	}

	resp := driverResp{
		ID:                 d.ID,
		Name:               d.Name,
		Phone:              d.Phone,
		LanguagePreference: d.LanguagePreference,
		Vehicle: vehicleDTO{
			Type:              d.Vehicle.Type,
			Number:            d.Vehicle.Number,
			InsuranceExpiry:   d.Vehicle.InsuranceExpiry,
			RegistrationDocID: d.Vehicle.RegistrationDocID,
		},
		Earnings: earnings,
	}
	if c := d.EmergencyContact; c != nil {
		resp.EmergencyContact = &emergencyContactDTO{Name: c.Name, Phone: c.Phone, Relationship: c.Relationship}
	}
	return resp
}

type commandsResp struct {
	Commands []string `json:"commands"`
}
