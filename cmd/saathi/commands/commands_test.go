package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "greeting",
			query: "namaste",
			want:  []string{"intent:  greeting", "rule:    1", `keyword: "namaste"`},
		},
		{
			name:  "help wins over challan",
			query: "challan help",
			want:  []string{"intent:  help", "rule:    3"},
		},
		{
			name:  "unknown",
			query: "xyz",
			want:  []string{"intent:  unknown", "rule:    none"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, "", "classify", tc.query)
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
		})
	}
}

func TestAsk(t *testing.T) {
	out, err := run(t, "", "ask", "Aaj maine kitna kamaya?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	want := "Aaj aapne 8 trip complete kiye aur ₹2500.00 kamaye. Aapka kharcha ₹500.00 tha, isliye aapki net kamai hai ₹2000.00."
	if !strings.Contains(out, want) {
		t.Errorf("output %q missing %q", out, want)
	}
	if !strings.Contains(out, "Suggestions:") {
		t.Errorf("output %q missing suggestions", out)
	}
}

func TestAsk_UnknownDriver(t *testing.T) {
	out, err := run(t, "", "ask", "--driver", "nobody", "namaste")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !strings.Contains(out, "I couldn't find your driver profile. Please try again later.") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestAsk_Interactive(t *testing.T) {
	out, err := run(t, "Kya mujhe koi penalty lagi hai?\nexit\nnamaste\n", "ask")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !strings.Contains(out, "Aapko aaj 1 penalty laga hai: Late delivery by 30 minutes.") {
		t.Errorf("unexpected output %q", out)
	}
	if strings.Contains(out, "Namaste") {
		t.Errorf("input after exit was processed: %q", out)
	}
}

func TestDriverShow(t *testing.T) {
	out, err := run(t, "", "driver", "show", "driver456")
	if err != nil {
		t.Fatalf("driver show: %v", err)
	}
	if !strings.Contains(out, "Mohan Singh") || !strings.Contains(out, "no earnings recorded") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := run(t, "", "driver", "show", "nobody"); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestDriverEarnings(t *testing.T) {
	out, err := run(t, "", "driver", "earnings", "driver456",
		"--date", "2024-05-08", "--total", "1000", "--expenses", "200", "--trips", "3",
		"--penalty", "p1=Wrong route")
	if err != nil {
		t.Fatalf("driver earnings: %v", err)
	}
	for _, w := range []string{"Recorded 2024-05-08", "trips 3", "net ₹800.00", "penalty p1: Wrong route"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q missing %q", out, w)
		}
	}

	out, err = run(t, "", "driver", "earnings", "driver456", "--date", "2024-05-08", "--total", "1000", "--expenses", "200", "--net", "750")
	if err != nil {
		t.Fatalf("driver earnings: %v", err)
	}
	if !strings.Contains(out, "net ₹750.00") {
		t.Errorf("explicit net ignored: %q", out)
	}

	if _, err := run(t, "", "driver", "earnings", "driver456", "--date", "someday"); err == nil {
		t.Error("expected error for an unparseable date")
	}
}

func TestCommands(t *testing.T) {
	out, err := run(t, "", "commands")
	if err != nil {
		t.Fatalf("commands: %v", err)
	}
	if !strings.HasPrefix(out, "- ") {
		t.Errorf("unexpected output %q", out)
	}
}
