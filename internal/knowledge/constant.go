package knowledge

// Process guide names.
const (
	GuideContestChallan   = "contest_challan"
	GuideDigilockerUpload = "digilocker_upload"
	GuideApplyInsurance   = "apply_insurance"
)

// Canned phrase keys.
const (
	PhraseGreeting = "greeting"
	PhraseThanks   = "thanks"
	PhraseHelp     = "help"
)

var defaultGuides = map[string][]string{
	GuideContestChallan: {
		"Visit the traffic police website",
		"Click on 'Contest Challan' option",
		"Enter your vehicle number and challan number",
		"Upload necessary documents",
		"Submit your explanation",
		"Pay any required fees",
		"Track your application status",
	},
	GuideDigilockerUpload: {
		"Open DigiLocker app or website",
		"Login with your mobile number",
		"Select 'Upload Documents'",
		"Choose document type",
		"Select file from your device",
		"Add description if needed",
		"Click 'Upload'",
	},
	GuideApplyInsurance: {
		"Contact your insurance provider",
		"Provide vehicle details",
		"Submit required documents",
		"Choose insurance plan",
		"Make payment",
		"Receive policy documents",
	},
}

var defaultPhrases = map[string]string{
	PhraseGreeting: "Namaste! Main aapka Porter Saathi hoon. Aaj main aapki kya madad kar sakta hoon?",
	PhraseThanks:   "Aapka swagat hai! Kya aapko koi aur madad chahiye?",
	PhraseHelp:     "Main aapki madad earnings, penalties, challan, documents, aur emergency situations ke liye kar sakta hoon.",
}

var defaultCommands = []string{
	"Aaj ka kharcha kaat ke kitna kamaya?",
	"Mera business pichle hafte se behtar hai ya nahi?",
	"Kya mujhe koi penalty lagi hai?",
	"Challan kaise contest karein?",
	"DigiLocker par documents kaise upload karein?",
	"Sahayata chahiye",
}
