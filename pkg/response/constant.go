package response

const (
	MessageSuccess         = "Success"
	MessageTooManyRequests = "Too many requests, slow down"
	badRequestErrorCode    = 1
)
