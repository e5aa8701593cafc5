package ats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyashree2811/job-search-automation/internal/models"
)

func testProfile() *models.ResumeProfile {
	return &models.ResumeProfile{
		Skills:          []string{"Playwright", "Python"},
		TechStack:       []string{"Playwright", "Selenium WebDriver", "Jenkins"},
		ExperienceYears: 10,
		Languages:       []string{"English"},
	}
}

func TestScoreGermanRequiredShortCircuits(t *testing.T) {
	scorer := NewScorer(testProfile())

	score := scorer.Score(
		[]string{"Python", "Selenium"},
		[]string{"Docker"},
		"3 years",
		[]string{"German (fluent, required)"},
		true,
	)

	assert.Equal(t, 0, score.OverallScore)
	assert.Equal(t, 0, score.SkillsMatch)
	assert.Equal(t, 0, score.TechStackMatch)
	assert.False(t, score.ExperienceMatch)
	assert.False(t, score.LanguageMatch)
	assert.Empty(t, score.MatchedSkills)
	assert.Empty(t, score.MissingSkills)
	assert.Equal(t, RecommendationSkip, score.Recommendation)
}

func TestScoreGermanShortCircuitBeatsNilProfile(t *testing.T) {
	scorer := NewScorer(nil)
	assert.NotPanics(t, func() {
		scorer.Score(nil, nil, "", nil, true)
	})
}

func TestScoreWithoutProfilePanics(t *testing.T) {
	scorer := NewScorer(nil)
	assert.Panics(t, func() {
		scorer.Score([]string{"Python"}, nil, "Not specified", nil, false)
	})
}

func TestScoreBoundaryExample(t *testing.T) {
	scorer := NewScorer(testProfile())

	score := scorer.Score(
		[]string{"Test Automation", "Python", "Selenium"},
		nil,
		"Not specified",
		nil,
		false,
	)

	//only "Python" matches: "Test Automation" and "Selenium" share no
	//tier with Playwright/Python
	assert.Equal(t, []string{"Python"}, score.MatchedSkills)
	assert.ElementsMatch(t, []string{"Test Automation", "Selenium"}, score.MissingSkills)
	assert.Equal(t, 33, score.SkillsMatch) // 1/3
	assert.Equal(t, 0, score.TechStackMatch)
	assert.True(t, score.ExperienceMatch)
	assert.True(t, score.LanguageMatch)
	// 33.33*0.4 + 0*0.4 + 20 = 33.33 -> 33
	assert.Equal(t, 33, score.OverallScore)
	assert.Equal(t, RecommendationLow, score.Recommendation)
}

func TestScoreFullMatch(t *testing.T) {
	scorer := NewScorer(testProfile())

	score := scorer.Score(
		[]string{"Playwright", "Python"},
		[]string{"Jenkins"},
		"5 years",
		[]string{"English (B2+, required)"},
		false,
	)

	// 100*0.4 + 100*0.4 + 20 = 100
	assert.Equal(t, 100, score.OverallScore)
	assert.Equal(t, RecommendationExcellent, score.Recommendation)
	assert.True(t, score.ExperienceMatch)
	assert.True(t, score.LanguageMatch)
	assert.Empty(t, score.MissingSkills)
}

func TestScoreLanguagePenalty(t *testing.T) {
	scorer := NewScorer(testProfile())

	score := scorer.Score(
		[]string{"Playwright", "Python"},
		[]string{"Jenkins"},
		"5 years",
		[]string{"French (fluent, required)"},
		false,
	)

	assert.False(t, score.LanguageMatch)
	// 40 + 40 + 20 - 10 = 90
	assert.Equal(t, 90, score.OverallScore)
}

func TestScoreGermanExcludedFromLanguageCheck(t *testing.T) {
	scorer := NewScorer(testProfile())

	//German appears in the list but germanRequired is false (e.g. optional);
	//it must not trigger the language penalty
	score := scorer.Score(
		[]string{"Playwright"},
		nil,
		"Not specified",
		[]string{"German (optional)"},
		false,
	)

	assert.True(t, score.LanguageMatch)
}

func TestScoreExperienceMismatch(t *testing.T) {
	profile := testProfile()
	profile.ExperienceYears = 2
	scorer := NewScorer(profile)

	score := scorer.Score([]string{"Python"}, nil, "5+ years", nil, false)

	assert.False(t, score.ExperienceMatch)
	// 100*0.4 + 0 + 0 = 40
	assert.Equal(t, 40, score.OverallScore)
	assert.Equal(t, RecommendationModerate, score.Recommendation)
}

func TestSimilarityMatchTiers(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{name: "exact", a: "Python", b: "python", expected: true},
		{name: "substring", a: "Selenium", b: "Selenium WebDriver", expected: true},
		{name: "token overlap", a: "API Testing", b: "Testing Tools", expected: true},
		{name: "short tokens ignored", a: "Go", b: "Golang", expected: true}, // substring tier, not token tier
		{name: "no relation", a: "Playwright", b: "Kubernetes", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, similarityMatch(tt.a, tt.b))
		})
	}
}

func TestParseExperienceYears(t *testing.T) {
	assert.Equal(t, 0, parseExperienceYears("Not specified"))
	assert.Equal(t, 0, parseExperienceYears("not specified at all"))
	assert.Equal(t, 3, parseExperienceYears("3-5 years"))
	assert.Equal(t, 5, parseExperienceYears("5+ years"))
	assert.Equal(t, 0, parseExperienceYears("several years"))
}

func TestRecommendationTiers(t *testing.T) {
	assert.Equal(t, RecommendationExcellent, recommend(75))
	assert.Equal(t, RecommendationGood, recommend(60))
	assert.Equal(t, RecommendationModerate, recommend(40))
	assert.Equal(t, RecommendationLow, recommend(39))
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.yaml")
	content := `skills:
  - Playwright
  - Python
tech_stack:
  - Jenkins
experience_years: 10
languages:
  - English
domains:
  - eCommerce
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	profile, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Playwright", "Python"}, profile.Skills)
	assert.Equal(t, 10, profile.ExperienceYears)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
