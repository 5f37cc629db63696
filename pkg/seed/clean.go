package seed

import "strings"

const fence = "```"

// StripFences removes markdown code fences wrapped around a model response
// and trims surrounding whitespace. A leading fence may carry a "json" tag in
// any case. Applying it to its own output returns the same text.
func StripFences(s string) string {
	for {
		next := stripFencesOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func stripFencesOnce(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, fence) {
		s = s[len(fence):]
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
	}
	s = strings.TrimSuffix(s, fence)

	return strings.TrimSpace(s)
}
