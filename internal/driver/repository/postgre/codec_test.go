package postgre

import (
	"testing"
	"time"

	"porter-saathi/internal/model"
)

func TestEarningsRowToModel(t *testing.T) {
	row := earningsRow{
		Day:            time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
		TotalEarnings:  2500,
		Expenses:       500,
		NetEarnings:    2000,
		CompletedTrips: 8,
		Penalties:      []byte(`{"penalty1":"Late delivery by 30 minutes"}`),
	}

	day, e, err := row.toModel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != (model.Date{Year: 2024, Month: time.May, Day: 8}) {
		t.Errorf("unexpected day %v", day)
	}
	if e.CompletedTrips != 8 || e.NetEarnings != 2000 {
		t.Errorf("unexpected earnings %+v", e)
	}
	if e.Penalties["penalty1"] != "Late delivery by 30 minutes" {
		t.Errorf("penalties not decoded: %v", e.Penalties)
	}
	if e.Rewards == nil || len(e.Rewards) != 0 {
		t.Errorf("empty rewards should decode to empty map, got %v", e.Rewards)
	}

	row.Rewards = []byte(`not json`)
	if _, _, err := row.toModel(); err == nil {
		t.Errorf("expected decode error")
	}
}

func TestEncodeJSON(t *testing.T) {
	var nilContact *model.EmergencyContact
	got, err := encodeJSON(nilContact)
	if err != nil || got != nil {
		t.Errorf("nil contact should encode as NULL, got %v %v", got, err)
	}

	got, err = encodeJSON(&model.EmergencyContact{Name: "Sunita Devi"})
	if err != nil || got == nil || *got == "" {
		t.Fatalf("unexpected result %v %v", got, err)
	}

	reasons, err := encodeReasons(nil)
	if err != nil || reasons != "{}" {
		t.Errorf("nil reasons should encode as {}, got %q %v", reasons, err)
	}
}
