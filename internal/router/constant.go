package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// DefaultRules is the ordered rule table. First match wins.
//
// "help" appears in both the help and the emergency rule. Rule order is the
// tie-break, so the emergency rule can only fire on "emergency" or "sahayata".
var DefaultRules = []Rule{
	{Intent: IntentGreeting, Keywords: []string{"namaste", "hello", "hi"}},
	{Intent: IntentThanks, Keywords: []string{"thank", "dhanyavad"}},
	{Intent: IntentHelp, Keywords: []string{"help", "madad"}},
	{Intent: IntentEarnings, Keywords: []string{"kamaya", "earn", "earning"}},
	{Intent: IntentPenalty, Keywords: []string{"penalty", "fine", "dand"}},
	{Intent: IntentChallan, Keywords: []string{"challan", "ticket"}},
	{Intent: IntentDigilocker, Keywords: []string{"digilocker", "document"}},
	{Intent: IntentBusiness, Keywords: []string{"business", "vyapar"}},
	{Intent: IntentEmergency, Keywords: []string{"emergency", "sahayata", "help"}},
	{Intent: IntentInsurance, Keywords: []string{"insurance", "bima"}},
}
