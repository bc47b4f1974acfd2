package actionid

// Known indicator keys, in priority order. Indicators are not mutually
// exclusive and some imply others (no capture at all implies failed
// liveness), so the first matching explanation wins.
var rejectionMessages = []struct {
	key     string
	message string
}{
	{"iv_is_biometrics_collected", "We could not capture your face. Please ensure your camera is on, your face is fully visible, and try again."},
	{"iv_is_biometrics_match", "We could not match your face to this account. Please make sure you are using the correct email or re-enroll."},
	{"iv_liveness", "We could not confirm that this was a live person. Please look at the camera and avoid using photos or screens."},
	{"iv_user_enrolled", "We do not have a biometric profile for this email yet. Please complete enrollment first."},
}

const genericRejectionMessage = "We were unable to verify your identity. Please try again in good lighting and ensure your face is clearly visible."

// FriendlyRejection maps a rejected verdict's indicators to an actionable
// user-facing message. Unmapped or unknown indicators fall back to a
// generic retry message rather than leaking provider-internal names.
func FriendlyRejection(indicators map[string]interface{}) string {
	for _, candidate := range rejectionMessages {
		if value, ok := indicators[candidate.key]; ok {
			if b, isBool := value.(bool); isBool && !b {
				return candidate.message
			}
		}
	}
	return genericRejectionMessage
}
