package horizon

import "strings"

// SupportsFilters reports whether the browser identified by userAgent
// renders feDisplacementMap with feImage inputs correctly. Safari does not,
// and its user agent is the only one containing "Safari" without "Chrome".
func SupportsFilters(userAgent string) bool {
	return !(strings.Contains(userAgent, "Safari") && !strings.Contains(userAgent, "Chrome"))
}
