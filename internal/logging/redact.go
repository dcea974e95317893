package logging

import "strings"

// secretKeyPatterns are matched case-insensitively against attribute keys.
// Exec lines can carry credentials as arguments, e.g. --token=...
var secretKeyPatterns = []string{"TOKEN", "SECRET", "PASSWORD", "CREDENTIAL"}

func shouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, p := range secretKeyPatterns {
		if strings.Contains(upper, p) {
			return true
		}
	}
	return false
}

// maskValue keeps the last 4 characters of values longer than 4.
func maskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
