package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// MinRelevance is the floor returned whenever a reply carries no usable signal.
const MinRelevance = 0.1

var (
	decimalPattern = regexp.MustCompile(`(?:0?\.\d+|1(?:\.0+)?)`)
	percentPattern = regexp.MustCompile(`(\d{1,3})(?:\.\d+)?%?`)
	numberPattern  = regexp.MustCompile(`\d+`)

	negativePhrases = []string{"not relevant", "irrelevant", "no match"}
	highWords       = []string{"high", "strong", "excellent", "perfect", "great", "very relevant", "highly"}
	mediumWords     = []string{"moderate", "fair", "average", "medium", "partial", "somewhat"}
	lowWords        = []string{"low", "poor", "weak", "minimal", "limited", "not relevant", "irrelevant"}
)

// ParseRelevance turns a free-form model reply into a relevance in [0, 1].
// The strategies are tried in a fixed order and the first one that applies
// wins: a decimal in [0, 1], a whole number or percentage, wording, and
// finally any number in the text. Replies with no signal yield MinRelevance.
func ParseRelevance(reply string) float64 {
	if m := decimalPattern.FindString(reply); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			return v
		}
	}

	if m := percentPattern.FindStringSubmatch(reply); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return clamp(normalizePercent(v), 0, 1)
		}
	}

	lower := strings.ToLower(reply)
	switch {
	case containsAny(lower, negativePhrases):
		return MinRelevance
	case containsAny(lower, highWords):
		return 0.8
	case containsAny(lower, mediumWords):
		return 0.5
	case containsAny(lower, lowWords):
		return 0.2
	}

	if len(strings.TrimSpace(reply)) < 5 {
		return MinRelevance
	}

	if m := numberPattern.FindString(reply); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			return clamp(normalizePercent(v), MinRelevance, 1)
		}
	}

	return MinRelevance
}

func normalizePercent(v float64) float64 {
	if v > 1 {
		return v / 100
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
