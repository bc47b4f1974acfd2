package response

import "time"

// JSON keys are camelCase to match the wire format the capture frontend
// already speaks.

type UserPayload struct {
	Id         string     `json:"id"`
	Email      string     `json:"email"`
	IsEnrolled bool       `json:"isEnrolled"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	User    *UserPayload `json:"user,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type UserCheckResponse struct {
	Success bool   `json:"success"`
	Exists  bool   `json:"exists"`
	Error   string `json:"error,omitempty"`
}

type AuditEntry struct {
	Id             uint            `json:"id"`
	CreatedAt      time.Time       `json:"createdAt"`
	Action         string          `json:"action"`
	VerifiedAction bool            `json:"verifiedAction"`
	IvScore        *float64        `json:"ivScore"`
	Indicators     map[string]bool `json:"indicators"`
}

type AuditLogsResponse struct {
	Success bool         `json:"success"`
	Logs    []AuditEntry `json:"logs"`
	Error   string       `json:"error,omitempty"`
}
