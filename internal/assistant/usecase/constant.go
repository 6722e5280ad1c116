package usecase

import "time"

// DefaultEmergencyTimeout bounds the emergency sink call.
const DefaultEmergencyTimeout = 30 * time.Second

// weekOffset is how far back the business comparison looks.
const weekOffset = -7

// Reply texts.
const (
	msgDriverNotFound = "I couldn't find your driver profile. Please try again later."
	msgUnknown        = "I'm not sure how to help with that. You can ask me about your earnings, penalties, or other assistance."

	msgEarnings       = "Aaj aapne %d trip complete kiye aur ₹%.2f kamaye. Aapka kharcha ₹%.2f tha, isliye aapki net kamai hai ₹%.2f."
	msgEarningsNoData = "Aaj ke liye koi earning data uplabdh nahi hai."

	msgPenalty   = "Aapko aaj %d penalty laga hai: %s"
	msgNoPenalty = "Aapko aaj koi penalty nahi lagi hai. Badhai ho!"

	msgChallanIntro    = "Main aapko challan contest karne mein madad kar sakta hun. Yeh ek step-by-step process hai:"
	msgDigilockerIntro = "Main aapko DigiLocker par documents upload karne mein madad kar sakta hun. Yeh process kuch steps mein puri hogi:"
	msgInsuranceIntro  = "Main aapko vehicle insurance ke liye apply karne mein madad kar sakta hun. Yeh process kuch steps mein puri hogi:"
	msgStep            = "Step %d: %s"

	msgBusiness             = "Aaj aapka business pichle hafte ke mukable %s raha. Aaj aapne ₹%.2f kamaye jabki pichle hafte us din ₹%.2f kamaye the."
	msgGrowthUp             = "%.2f percent behtar"
	msgGrowthDown           = "%.2f percent kam"
	msgBusinessInsufficient = "Main business comparison ke liye paryaapt data nahi dhundh paaya."
	msgBusinessZeroBase     = "Pichle hafte ki net kamai shunya thi, isliye tulna sambhav nahi hai."

	msgEmergency = "Emergency alert bhej diya gaya hai. Aapki location aur details emergency contacts ko bhej di gayi hain. Kripya shant rahein aur madad ka intezar karein. Aapki safety hamari priority hai."
)

// Suggestion keys and texts.
const (
	suggestEarnings   = "earnings"
	suggestPenalties  = "penalties"
	suggestChallan    = "challan"
	suggestEmergency  = "emergency"
	suggestComparison = "comparison"

	suggestionEarnings   = "Aaj maine kitna kamaya?"
	suggestionPenalties  = "Kya mujhe koi penalty lagi hai?"
	suggestionChallan    = "Challan kaise contest karein?"
	suggestionEmergency  = "Sahayata chahiye"
	suggestionComparison = "Pichle hafte ke mukable aaj ka performance kaisa raha?"
)
