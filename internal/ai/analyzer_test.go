package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyashree2811/job-search-automation/internal/models"
)

// fakeClient returns canned responses or errors and records the calls made.
type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) Chat(_ context.Context, _ []Message) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const validAnalysisJSON = `{
	"requiredSkills": ["Python", "API Testing"],
	"techStack": ["Playwright", "Jenkins"],
	"experienceYears": "5 years",
	"benefits": ["Remote work"],
	"summary": "QA automation role.",
	"germanRequired": false,
	"languageRequirements": ["English (B2+, required)"],
	"jobDomain": "software",
	"descriptionQuality": "complete",
	"confidenceLevel": "high",
	"warningFlags": []
}`

func TestAnalyzeParsesValidResponse(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{response: validAnalysisJSON})

	analysis := analyzer.Analyze(context.Background(), "some description")

	assert.Equal(t, []string{"Python", "API Testing"}, analysis.RequiredSkills)
	assert.Equal(t, []string{"Playwright", "Jenkins"}, analysis.TechStack)
	assert.Equal(t, "5 years", analysis.ExperienceYears)
	assert.Equal(t, models.DomainSoftware, analysis.JobDomain)
	assert.Equal(t, models.QualityComplete, analysis.DescriptionQuality)
	assert.Equal(t, models.ConfidenceHigh, analysis.ConfidenceLevel)
	assert.False(t, analysis.Failed())
}

func TestAnalyzeToleratesSurroundingCommentary(t *testing.T) {
	response := "Sure! Here is the analysis you asked for:\n```json\n" + validAnalysisJSON + "\n```\nLet me know if you need anything else."
	analyzer := NewAnalyzer(&fakeClient{response: response})

	analysis := analyzer.Analyze(context.Background(), "some description")

	assert.False(t, analysis.Failed())
	assert.Equal(t, []string{"Python", "API Testing"}, analysis.RequiredSkills)
}

func TestAnalyzeBackendErrorYieldsDefault(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{err: fmt.Errorf("%w: connection refused", ErrBackendUnreachable)})

	analysis := analyzer.Analyze(context.Background(), "some description")

	assert.True(t, analysis.Failed())
	assert.Equal(t, models.ConfidenceLow, analysis.ConfidenceLevel)
	assert.Equal(t, models.QualityIncomplete, analysis.DescriptionQuality)
	assert.Equal(t, models.DomainUnknown, analysis.JobDomain)
	assert.Equal(t, "Not specified", analysis.ExperienceYears)
	assert.False(t, analysis.GermanRequired)
	assert.Empty(t, analysis.RequiredSkills)
	assert.Empty(t, analysis.TechStack)
	assert.Empty(t, analysis.Benefits)
	assert.Empty(t, analysis.LanguageRequirements)
	assert.Contains(t, analysis.WarningFlags, models.WarningFlagAnalysisFailed)
}

func TestAnalyzeMalformedJSONYieldsDefault(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{response: "I could not produce JSON today, sorry."})

	analysis := analyzer.Analyze(context.Background(), "some description")

	assert.True(t, analysis.Failed())
	assert.Empty(t, analysis.RequiredSkills)
}

func TestAnalyzeTruncatesErrorFlag(t *testing.T) {
	longErr := errors.New("a very long backend failure message that keeps going and going well past fifty characters")
	analyzer := NewAnalyzer(&fakeClient{err: longErr})

	analysis := analyzer.Analyze(context.Background(), "some description")

	require.Len(t, analysis.WarningFlags, 2)
	assert.LessOrEqual(t, len(analysis.WarningFlags[1]), maxErrorFlagLen)
}

func TestAnalyzeCoercesUnknownEnumValues(t *testing.T) {
	response := `{
		"requiredSkills": ["Python"],
		"jobDomain": "quantum computing",
		"descriptionQuality": "amazing",
		"confidenceLevel": "ultra"
	}`
	analyzer := NewAnalyzer(&fakeClient{response: response})

	analysis := analyzer.Analyze(context.Background(), "some description")

	assert.False(t, analysis.Failed())
	assert.Equal(t, models.DomainUnknown, analysis.JobDomain)
	assert.Equal(t, models.QualityIncomplete, analysis.DescriptionQuality)
	assert.Equal(t, models.ConfidenceLow, analysis.ConfidenceLevel)
	//missing optional fields default rather than stay nil
	assert.Equal(t, "Not specified", analysis.ExperienceYears)
	assert.NotNil(t, analysis.TechStack)
	assert.NotNil(t, analysis.Benefits)
}

func TestTranslateSkipsNonGerman(t *testing.T) {
	client := &fakeClient{response: "should never be called"}
	analyzer := NewAnalyzer(client)

	got := analyzer.TranslateToEnglish(context.Background(), "English text", false)

	assert.Equal(t, "English text", got)
	assert.Equal(t, 0, client.calls, "non-German text must not hit the backend")
}

func TestTranslateFailureReturnsOriginal(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{err: errors.New("boom")})

	got := analyzer.TranslateToEnglish(context.Background(), "Deutscher Text", true)

	assert.Equal(t, "Deutscher Text", got)
}

func TestAnalyzeJobAttachesDescriptions(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{response: validAnalysisJSON})

	analysis := analyzer.AnalyzeJob(context.Background(), "Beschreibung auf Deutsch", true)

	assert.Equal(t, "Beschreibung auf Deutsch", analysis.RawDescription)
	//the fake returns the analysis JSON for the translation call too, so the
	//working text differs from the original and is recorded
	assert.NotEmpty(t, analysis.TranslatedDescription)
}

func TestAnalyzeJobEnglishKeepsRawOnly(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{response: validAnalysisJSON})

	analysis := analyzer.AnalyzeJob(context.Background(), "English description", false)

	assert.Equal(t, "English description", analysis.RawDescription)
	assert.Empty(t, analysis.TranslatedDescription)
}

func TestExtractFirstJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "bare object", input: `{"a": 1}`, expected: `{"a": 1}`},
		{name: "leading commentary", input: `Here you go: {"a": 1}`, expected: `{"a": 1}`},
		{name: "trailing junk", input: `{"a": 1} and some words }`, expected: `{"a": 1}`},
		{name: "nested objects", input: `{"a": {"b": 2}} {"second": true}`, expected: `{"a": {"b": 2}}`},
		{name: "brace inside string", input: `{"a": "closing } brace"}`, expected: `{"a": "closing } brace"}`},
		{name: "escaped quote inside string", input: `{"a": "quote \" and } brace"}`, expected: `{"a": "quote \" and } brace"}`},
		{name: "no object", input: "no json here", wantErr: true},
		{name: "unbalanced", input: `{"a": 1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractFirstJSON(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
