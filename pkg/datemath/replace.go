package datemath

import "strings"

// RemoveAll removes every occurrence of fragment from text. The match is
// literal and case-sensitive. An empty fragment leaves text unchanged.
func RemoveAll(text, fragment string) string {
	if fragment == "" {
		return text
	}
	return strings.ReplaceAll(text, fragment, "")
}
