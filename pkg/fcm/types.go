package fcm

// Message is a push notification addressed to a topic or a device token.
// Exactly one of Topic and Token should be set.
type Message struct {
	Topic string
	Token string
	Title string
	Body  string
	Data  map[string]string
}
