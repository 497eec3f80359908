package utils

// MaskedValue replaces encrypted setting values on admin reads.
const MaskedValue = "********"

// MaskSecret hides a stored secret, keeping empty values empty so the admin
// UI can tell "not configured" from "configured".
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	return MaskedValue
}
