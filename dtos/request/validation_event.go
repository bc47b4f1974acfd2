package request

// ValidationEvent mirrors an audit entry onto the event bus so downstream
// consumers (fraud review, notifications) see every verification outcome.
type ValidationEvent struct {
	UserId         string   `json:"user_id"`
	Action         string   `json:"action"`
	VerifiedAction bool     `json:"verified_action"`
	IvScore        *float64 `json:"iv_score,omitempty"`
}
