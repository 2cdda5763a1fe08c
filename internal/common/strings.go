package common

// UnknownStr is the String form of out-of-range enum values.
const UnknownStr = "unknown"

// FirstNonEmpty returns the first value that is not the empty string.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
