package router_test

import (
	"context"
	"testing"

	"porter-saathi/internal/router"
	"porter-saathi/pkg/log"
)

func TestClassify(t *testing.T) {
	r := router.New(log.NewNop())
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  router.Intent
	}{
		{"greeting hindi", "Namaste ji", router.IntentGreeting},
		{"greeting english uppercase", "HELLO", router.IntentGreeting},
		{"thanks", "thank you", router.IntentThanks},
		{"thanks hindi", "dhanyavad", router.IntentThanks},
		{"help", "help", router.IntentHelp},
		{"help hindi", "madad karo", router.IntentHelp},
		{"earnings", "Aaj maine kitna kamaya?", router.IntentEarnings},
		{"earnings english", "my earnings today", router.IntentEarnings},
		{"penalty", "Kya mujhe koi penalty lagi?", router.IntentPenalty},
		{"fine", "any fine today", router.IntentPenalty},
		{"challan", "Challan kaise contest karein?", router.IntentChallan},
		{"ticket", "got a ticket", router.IntentChallan},
		{"digilocker", "DigiLocker upload", router.IntentDigilocker},
		{"document", "document upload karna", router.IntentDigilocker},
		{"business", "mera business kaisa raha", router.IntentBusiness},
		{"vyapar", "vyapar", router.IntentBusiness},
		{"emergency", "emergency", router.IntentEmergency},
		{"sahayata", "sahayata do", router.IntentEmergency},
		{"insurance", "insurance renew", router.IntentInsurance},
		{"bima", "bima", router.IntentInsurance},
		{"unknown", "xyz", router.IntentUnknown},
		{"empty", "", router.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(ctx, tt.query)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.query, got.Intent, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	r := router.New(log.NewNop())
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  router.Intent
	}{
		// "help" belongs to both help and emergency; help is listed first.
		{"help beats challan", "help me contest my challan", router.IntentHelp},
		{"help beats emergency", "emergency help needed", router.IntentHelp},
		// "hi" is a substring of "chahiye" and "nahi".
		{"chahiye contains hi", "Sahayata chahiye", router.IntentGreeting},
		{"nahi contains hi", "business behtar hai ya nahi", router.IntentGreeting},
		{"earnings beats penalty", "earning aur penalty", router.IntentEarnings},
		{"penalty beats challan", "penalty for challan", router.IntentPenalty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Classify(ctx, tt.query).Intent; got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestClassifyReportsRule(t *testing.T) {
	r := router.New(log.NewNop())

	out := r.Classify(context.Background(), "Bima karwana")
	if out.Rule != 10 || out.Keyword != "bima" {
		t.Errorf("unexpected output %+v", out)
	}

	out = r.Classify(context.Background(), "???")
	if out.Rule != 0 || out.Keyword != "" {
		t.Errorf("unknown should report rule 0, got %+v", out)
	}
}

func TestDefaultRulesCoverEveryIntent(t *testing.T) {
	seen := map[router.Intent]bool{}
	for _, rule := range router.DefaultRules {
		seen[rule.Intent] = true
	}
	for _, intent := range router.Intents {
		if intent == router.IntentUnknown {
			continue
		}
		if !seen[intent] {
			t.Errorf("intent %s has no rule", intent)
		}
	}
}

func TestNewWithRules(t *testing.T) {
	r := router.NewWithRules([]router.Rule{
		{Intent: router.IntentEmergency, Keywords: []string{"help"}},
	}, log.NewNop())

	if got := r.Classify(context.Background(), "HELP"); got.Intent != router.IntentEmergency {
		t.Errorf("custom rules not applied, got %s", got.Intent)
	}
}
