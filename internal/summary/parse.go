package summary

import (
	"regexp"
	"strings"
)

// Markers of the batch prompt protocol.
const (
	ResumeStartMarker  = "### RESUME START:"
	ResumeEndMarker    = "### RESUME END"
	SummaryStartMarker = "<<<SUMMARY START>>>"
	SummaryEndMarker   = "<<<SUMMARY END>>>"
)

var (
	blankRuns = regexp.MustCompile(`\n{3,}`)
	bullet    = regexp.MustCompile(`^(?:[-*–·]\s+|•\s*)`)
)

// ParseBlocks extracts the summary blocks of a model reply in order.
//
//	reply := junk { START body END junk }
//
// Text before the first start marker is ignored. A block whose end marker is
// missing, or whose body is blank, yields nothing.
func ParseBlocks(reply string) []string {
	chunks := strings.Split(reply, SummaryStartMarker)

	blocks := make([]string, 0, len(chunks)-1)
	for _, chunk := range chunks[1:] {
		end := strings.Index(chunk, SummaryEndMarker)
		if end < 0 {
			continue
		}
		body := strings.TrimSpace(chunk[:end])
		if body == "" {
			continue
		}
		blocks = append(blocks, body)
	}
	return blocks
}

// Normalize tidies a summary: leading and trailing blanks are stripped from
// every line, bullet markers become "• " and runs of blank lines shrink to one.
func Normalize(summary string) string {
	summary = strings.ReplaceAll(summary, "\r\n", "\n")

	lines := strings.Split(summary, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if loc := bullet.FindStringIndex(line); loc != nil {
			line = "• " + line[loc[1]:]
		}
		lines[i] = line
	}

	out := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(out)
}
