package documents

import (
	"regexp"
	"strings"
)

// Candidate email patterns, tried in order. The leading group keeps a match
// from starting in the middle of a word or another address.
var emailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|[^\w@])([a-z]+_?\d+@tamu\.edu)`),
	regexp.MustCompile(`(?:^|[^\w@])([\w.-]+@(?:[\w-]+\.)+(?:edu|ac\.\w{2,}))`),
	regexp.MustCompile(`(?:^|[^\w@])([\w.-]+@[\w.-]+\.\w+)`),
}

// ExtractEmail returns the candidate's email address from resume text, or ""
// when none is found. University addresses win over any other address in the
// text.
func ExtractEmail(text string) string {
	text = strings.ToLower(text)
	for _, pattern := range emailPatterns {
		if match := pattern.FindStringSubmatch(text); match != nil {
			return match[1]
		}
	}
	return ""
}
