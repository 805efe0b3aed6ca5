package jd

import (
	"regexp"
	"strings"
)

// FallbackRole is used when no title can be inferred.
const FallbackRole = "this position"

var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([A-Za-z\s]+(?:Engineer|Developer|Scientist|Analyst|Manager|Designer|Architect|Intern|Associate|Lead|Director|Consultant)(?:\s*[A-Za-z\s]*)?)\s*(?:\(|$)`),
	regexp.MustCompile(`(?i)(?:Position|Role|Title|Job):*\s*([A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)([A-Za-z\s]+)\s+Position`),
}

// JobRole infers the advertised role from a raw job description. Patterns are
// tried in order and the first candidate with three to six words wins.
func JobRole(text string) string {
	for _, re := range rolePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			role := strings.TrimSpace(m[1])
			if n := len(strings.Fields(role)); n >= 3 && n <= 6 {
				return role
			}
		}
	}
	return FallbackRole
}
