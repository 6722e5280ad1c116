package router

// Intent is the closed set of categories a query resolves to.
type Intent string

const (
	IntentGreeting   Intent = "greeting"
	IntentThanks     Intent = "thanks"
	IntentHelp       Intent = "help"
	IntentEarnings   Intent = "earnings"
	IntentPenalty    Intent = "penalty"
	IntentChallan    Intent = "challan"
	IntentDigilocker Intent = "digilocker"
	IntentBusiness   Intent = "business"
	IntentEmergency  Intent = "emergency"
	IntentInsurance  Intent = "insurance"
	IntentUnknown    Intent = "unknown"
)

// Intents lists every intent in rule order, unknown last.
var Intents = []Intent{
	IntentGreeting,
	IntentThanks,
	IntentHelp,
	IntentEarnings,
	IntentPenalty,
	IntentChallan,
	IntentDigilocker,
	IntentBusiness,
	IntentEmergency,
	IntentInsurance,
	IntentUnknown,
}

// Rule maps a keyword set to an intent. A rule matches when the lowercased
// query contains any keyword as a substring.
type Rule struct {
	Intent   Intent
	Keywords []string
}

// RouterOutput is the classification result.
type RouterOutput struct {
	Intent  Intent `json:"intent"`
	Rule    int    `json:"rule"`              // 1-based index into the rule table; 0 when unknown
	Keyword string `json:"keyword,omitempty"` // keyword that matched
}
