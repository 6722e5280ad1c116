package test

// ClassifyRequest represents a classify request
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse reports which rule matched the text
type ClassifyResponse struct {
	Success bool   `json:"success"`
	Intent  string `json:"intent"`
	Rule    int    `json:"rule"`
	Keyword string `json:"keyword,omitempty"`
	Text    string `json:"text"`
}
