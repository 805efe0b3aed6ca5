// Package sections splits resume text into coarse topical sections.
package sections

import (
	"strings"
	"unicode"
)

// Label names one of the fixed resume sections.
type Label string

const (
	Skills     Label = "skills"
	Experience Label = "experience"
	Projects   Label = "projects"
	Other      Label = "other"
)

// Labels lists every section in its canonical order.
var Labels = []Label{Skills, Experience, Projects, Other}

// header aliases, checked in this order. The first alias contained in a
// normalized line switches the current section.
var aliases = []struct {
	label Label
	names []string
}{
	{Skills, []string{"skills", "technical skills", "skill set"}},
	{Experience, []string{"experience", "professional experience", "technical experience", "work experience"}},
	{Projects, []string{"projects", "academic projects", "personal projects"}},
}

// Set maps every Label to the text accumulated under it. All four labels are
// always present.
type Set map[Label]string

// Extract assigns every non-blank line of text to exactly one section.
// Lines before the first recognized header go to Other. A header line belongs
// to the section it opens, and a section stays current until the next header.
func Extract(text string) Set {
	builders := make(map[Label]*strings.Builder, len(Labels))
	for _, l := range Labels {
		builders[l] = &strings.Builder{}
	}

	current := Other
	for _, raw := range strings.FieldsFunc(text, isLineBreak) {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if label, ok := detectHeader(raw); ok {
			current = label
		}
		builders[current].WriteString(raw)
		builders[current].WriteByte(' ')
	}

	set := make(Set, len(Labels))
	for _, l := range Labels {
		set[l] = builders[l].String()
	}
	return set
}

func detectHeader(line string) (Label, bool) {
	cleaned := cleanLine(line)
	if cleaned == "" {
		return "", false
	}
	for _, a := range aliases {
		for _, name := range a.names {
			if strings.Contains(cleaned, name) {
				return a.label, true
			}
		}
	}
	return "", false
}

// cleanLine keeps ASCII letters, digits and whitespace, then trims and lower-cases.
func cleanLine(line string) string {
	var b strings.Builder
	for _, r := range line {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

// Empty reports whether the section under l holds only whitespace.
func (s Set) Empty(l Label) bool {
	return strings.TrimSpace(s[l]) == ""
}

// Full joins every section in canonical order, separated by a space.
func (s Set) Full() string {
	parts := make([]string, 0, len(Labels))
	for _, l := range Labels {
		parts = append(parts, s[l])
	}
	return strings.Join(parts, " ")
}

// isLineBreak matches LF, CR and the other vertical separators resumes
// exported from word processors use.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
