// Package jd prepares job description text for matching.
package jd

import (
	"strings"
	"unicode"
)

// headers open a collecting span when contained in a lower-cased line.
var headers = []string{
	"required qualifications", "preferred qualifications", "skills needed", "you will",
	"job responsibilities", "minimum requirements", "what you'll work on", "what you bring",
	"bonus point for", "key responsibilities", "requirements", "what you'll do",
	"nice to have", "about you", "the following", "qualifications", "responsibilities",
	"about the role", "your role", "essential skills", "desired skills",
}

// Preprocess keeps the requirement-like parts of a job description. A line
// containing a header phrase starts a span and is kept along with the lines
// after it; an all-caps line that is not a header ends the span. When nothing
// is kept the original text is returned unchanged.
func Preprocess(text string) string {
	var kept []string
	collecting := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isHeader(line) {
			collecting = true
			kept = append(kept, line)
			continue
		}

		if collecting && isAllCaps(line) {
			collecting = false
			continue
		}

		if collecting {
			kept = append(kept, line)
		}
	}

	out := strings.Join(kept, "\n")
	if strings.TrimSpace(out) == "" {
		return text
	}
	return out
}

func isHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, h := range headers {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// isAllCaps reports whether line has at least one cased letter and none in lower case.
func isAllCaps(line string) bool {
	cased := false
	for _, r := range line {
		switch {
		case unicode.IsLower(r):
			return false
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			cased = true
		}
	}
	return cased
}
