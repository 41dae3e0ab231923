package schemas

type HealthResponse struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Version   string  `json:"version"`
	Timestamp float64 `json:"timestamp"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type SubscribeResponse struct {
	Email      string `json:"email"`
	Subscribed bool   `json:"subscribed"`
}

type RefreshRequest struct {
	Reason string `json:"reason"`
}

type RefreshResponse struct {
	RefreshID string `json:"refreshId"`
	Pending   bool   `json:"pending"`
}

// FormatResponse is the result of an ad-hoc formatting request.
type FormatResponse struct {
	Kind   string `json:"kind"`
	Input  string `json:"input"`
	Result string `json:"result"`
}
