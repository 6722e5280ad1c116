package postgre

import (
	"encoding/json"
	"fmt"
	"time"

	"porter-saathi/internal/model"
)

// earningsRow mirrors one daily_earnings row.
type earningsRow struct {
	Day            time.Time
	TotalEarnings  float64
	Expenses       float64
	NetEarnings    float64
	CompletedTrips int32
	Penalties      []byte
	Rewards        []byte
}

func (row earningsRow) toModel() (model.Date, model.DailyEarnings, error) {
	e := model.DailyEarnings{
		TotalEarnings:  row.TotalEarnings,
		Expenses:       row.Expenses,
		NetEarnings:    row.NetEarnings,
		CompletedTrips: int(row.CompletedTrips),
	}
	var err error
	if e.Penalties, err = decodeReasons(row.Penalties); err != nil {
		return model.Date{}, e, fmt.Errorf("penalties: %w", err)
	}
	if e.Rewards, err = decodeReasons(row.Rewards); err != nil {
		return model.Date{}, e, fmt.Errorf("rewards: %w", err)
	}
	return model.DateOf(row.Day), e, nil
}

func decodeReasons(raw []byte) (map[string]string, error) {
	out := map[string]string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// encodeJSON marshals v as a JSON string for a ::jsonb parameter.
// A nil pointer encodes as SQL NULL.
func encodeJSON(v any) (*string, error) {
	if ec, ok := v.(*model.EmergencyContact); ok && ec == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func encodeReasons(m map[string]string) (string, error) {
	if m == nil {
		m = map[string]string{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
