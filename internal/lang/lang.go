package lang

import (
	"regexp"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultGermanThreshold is the indicator-match count above which a
// description is treated as German. Inherited heuristic, not validated
// against labeled data; keep configurable and calibrate when real postings
// are available.
const DefaultGermanThreshold = 10

var germanIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(der|die|das|ein|eine|und|oder|mit|für|von|zu|im|am|auf|bei)\b`),
	regexp.MustCompile(`\b(Sie|Ihre|Unser|Wir|Deine|Ihr)\b`),
	regexp.MustCompile(`(?i)\b(Kenntnisse|Erfahrung|Aufgaben|Anforderungen|Qualifikationen)\b`),
}

var languagePatterns = map[string]*regexp.Regexp{
	"German":  regexp.MustCompile(`(?i)\b(German|Deutsch|Deutsche)\b`),
	"English": regexp.MustCompile(`(?i)\b(English|Englisch)\b`),
}

// DetectGerman reports whether text looks like a German-language description,
// by counting hits of common German function words and job-section headings
// against the given threshold. Pass a threshold <= 0 to use the default.
func DetectGerman(text string, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultGermanThreshold
	}
	matches := 0
	for _, re := range germanIndicators {
		matches += len(re.FindAllString(text, -1))
	}
	return matches > threshold
}

// ExtractLanguages returns the distinct languages mentioned in text, sorted.
// This is a mention scan, not a requirement parser; the AI analyzer owns the
// annotated language-requirement extraction.
func ExtractLanguages(text string) []string {
	found := mapset.NewThreadUnsafeSet[string]()
	for name, re := range languagePatterns {
		if re.MatchString(text) {
			found.Add(name)
		}
	}
	languages := found.ToSlice()
	sort.Strings(languages)
	return languages
}
