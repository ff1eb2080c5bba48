package parallax

// Envelope is the part every API response shares.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
}

// UsageResponse is returned by CheckUsage.
type UsageResponse struct {
	UsedRequests string `json:"usedRequests"`
	LeftRequests int64  `json:"leftRequests"`
}
