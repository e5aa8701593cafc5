package ats

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Divyashree2811/job-search-automation/internal/models"
)

// Recommendation tiers, fixed thresholds.
const (
	RecommendationSkip      = "⚠️ SKIP - German language required"
	RecommendationExcellent = "🟢 EXCELLENT MATCH - Apply immediately!"
	RecommendationGood      = "🟡 GOOD MATCH - Worth applying"
	RecommendationModerate  = "🟠 MODERATE MATCH - Consider if interested"
	RecommendationLow       = "🔴 LOW MATCH - May not be suitable"
)

var firstNumberRegex = regexp.MustCompile(`(\d+)`)

// LoadProfile reads the candidate capability profile from a YAML file.
func LoadProfile(path string) (*models.ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resume profile: %w", err)
	}
	var profile models.ResumeProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse resume profile: %w", err)
	}
	return &profile, nil
}

// Scorer computes ATS-style match scores against a fixed resume profile.
// Stateless apart from the read-only profile; safe to reuse across postings.
type Scorer struct {
	profile *models.ResumeProfile
}

func NewScorer(profile *models.ResumeProfile) *Scorer {
	return &Scorer{profile: profile}
}

// Score computes the weighted match between the job's extracted requirements
// and the resume profile.
//
// German-mandatory postings short-circuit to a fixed zero result before the
// profile check, because they are categorically excluded downstream. Calling
// Score without a loaded profile otherwise is a wiring bug and panics.
func (s *Scorer) Score(jobSkills, jobTechStack []string, jobExperienceYears string, jobLanguages []string, germanRequired bool) models.ATSScore {
	if germanRequired {
		return models.ATSScore{
			OverallScore:   0,
			MatchedSkills:  []string{},
			MissingSkills:  []string{},
			Recommendation: RecommendationSkip,
		}
	}

	if s.profile == nil {
		panic("ats: resume profile not loaded")
	}

	matchedSkills := findMatches(s.profile.Skills, jobSkills)
	skillsMatchPercent := matchPercent(len(matchedSkills), len(jobSkills))

	matchedTech := findMatches(s.profile.TechStack, jobTechStack)
	techMatchPercent := matchPercent(len(matchedTech), len(jobTechStack))

	requiredYears := parseExperienceYears(jobExperienceYears)
	experienceMatch := requiredYears == 0 || s.profile.ExperienceYears >= requiredYears

	languageMatch := s.checkLanguageMatch(jobLanguages)

	// 40% skills + 40% tech + 20 for experience, flat penalty for a
	// language gap
	overall := skillsMatchPercent*0.4 + techMatchPercent*0.4
	if experienceMatch {
		overall += 20
	}
	if !languageMatch {
		overall -= 10
	}
	overallScore := clamp(int(math.Round(overall)), 0, 100)

	var missingSkills []string
	for _, skill := range jobSkills {
		if !anyMatch(skill, s.profile.Skills) {
			missingSkills = append(missingSkills, skill)
		}
	}

	return models.ATSScore{
		OverallScore:    overallScore,
		SkillsMatch:     int(math.Round(skillsMatchPercent)),
		TechStackMatch:  int(math.Round(techMatchPercent)),
		ExperienceMatch: experienceMatch,
		LanguageMatch:   languageMatch,
		MatchedSkills:   matchedSkills,
		MissingSkills:   emptyIfNil(missingSkills),
		Recommendation:  recommend(overallScore),
	}
}

func recommend(score int) string {
	switch {
	case score >= 75:
		return RecommendationExcellent
	case score >= 60:
		return RecommendationGood
	case score >= 40:
		return RecommendationModerate
	default:
		return RecommendationLow
	}
}

// findMatches returns the RESUME entries matched by any job requirement
// under the three-tier similarity test. One resume entry per job item, in
// job-item order.
func findMatches(resumeItems, jobItems []string) []string {
	matches := []string{}
	for _, jobItem := range jobItems {
		for _, resumeItem := range resumeItems {
			if similarityMatch(jobItem, resumeItem) {
				matches = append(matches, resumeItem)
				break
			}
		}
	}
	return matches
}

func anyMatch(item string, candidates []string) bool {
	for _, c := range candidates {
		if similarityMatch(item, c) {
			return true
		}
	}
	return false
}

// similarityMatch applies the three-tier test: exact equality, substring
// containment in either direction, then token overlap where any token longer
// than 3 characters from one string contains or is contained by such a token
// from the other.
func similarityMatch(str1, str2 string) bool {
	s1 := strings.ToLower(strings.TrimSpace(str1))
	s2 := strings.ToLower(strings.TrimSpace(str2))

	if s1 == s2 {
		return true
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return true
	}

	for _, w1 := range strings.Fields(s1) {
		if len(w1) <= 3 {
			continue
		}
		for _, w2 := range strings.Fields(s2) {
			if len(w2) <= 3 {
				continue
			}
			if strings.Contains(w1, w2) || strings.Contains(w2, w1) {
				return true
			}
		}
	}
	return false
}

// parseExperienceYears extracts the first integer from strings like
// "3-5 years" or "5+ years". "Not specified" means no requirement.
func parseExperienceYears(expString string) int {
	if strings.Contains(strings.ToLower(expString), "not specified") {
		return 0
	}
	m := firstNumberRegex.FindStringSubmatch(expString)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// checkLanguageMatch is true unless the job lists a non-German language the
// profile has no partial match for. German is excluded here; the
// germanRequired short-circuit owns it. No stated requirement means match.
func (s *Scorer) checkLanguageMatch(jobLanguages []string) bool {
	if len(jobLanguages) == 0 {
		return true
	}

	for _, jobLang := range jobLanguages {
		langLower := strings.ToLower(jobLang)
		if strings.Contains(langLower, "german") || strings.Contains(langLower, "deutsch") {
			continue
		}
		known := false
		for _, userLang := range s.profile.Languages {
			if strings.Contains(langLower, strings.ToLower(userLang)) {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}

func matchPercent(matched, total int) float64 {
	if total < 1 {
		total = 1
	}
	return float64(matched) / float64(total) * 100
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
