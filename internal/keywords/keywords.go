// Package keywords measures lexical overlap between a job description and a resume.
package keywords

import (
	_ "embed"
	"regexp"
	"strings"
)

// stopwordList is the union of the NLTK and scikit-learn English lists.
//
//go:embed stopwords.txt
var stopwordList string

var (
	wordPattern = regexp.MustCompile(`\w+`)
	stopwords   = loadStopwords(stopwordList)
)

func loadStopwords(list string) map[string]struct{} {
	words := strings.Fields(list)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether word is in the stop-word set.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// Extract returns the set of lower-cased word tokens of text without stop words.
func Extract(text string) map[string]struct{} {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		if IsStopword(tok) {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// Overlap returns the share of job description keywords found in the resume,
// in [0, 1]. An empty job description yields 0.
func Overlap(jd, resume string) float64 {
	jdWords := Extract(jd)
	resumeWords := Extract(resume)

	common := 0
	for w := range jdWords {
		if _, ok := resumeWords[w]; ok {
			common++
		}
	}

	return float64(common) / float64(max(len(jdWords), 1))
}
