package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyashree2811/job-search-automation/internal/models"
)

func job(title string, score int, mutate func(*models.AIJobAnalysis)) models.StoredJob {
	analysis := &models.AIJobAnalysis{
		JobDomain:          models.DomainSoftware,
		DescriptionQuality: models.QualityComplete,
		ConfidenceLevel:    models.ConfidenceHigh,
	}
	if mutate != nil {
		mutate(analysis)
	}
	return models.StoredJob{
		Title: title,
		JobDetails: models.JobPosting{
			Title:      title,
			AIAnalysis: analysis,
			ATSScore:   &models.ATSScore{OverallScore: score},
		},
	}
}

func TestExclude(t *testing.T) {
	tests := []struct {
		name     string
		job      models.StoredJob
		expected Reason
	}{
		{
			name:     "qualified",
			job:      job("good", 80, nil),
			expected: "",
		},
		{
			name: "german required",
			job: job("german", 90, func(a *models.AIJobAnalysis) {
				a.GermanRequired = true
			}),
			expected: ReasonGermanRequired,
		},
		{
			name:     "low ats",
			job:      job("weak", 39, nil),
			expected: ReasonLowATS,
		},
		{
			name: "wrong domain",
			job: job("biotech", 80, func(a *models.AIJobAnalysis) {
				a.JobDomain = models.DomainBiotech
			}),
			expected: ReasonWrongDomain,
		},
		{
			name: "unknown domain passes",
			job: job("unknown", 80, func(a *models.AIJobAnalysis) {
				a.JobDomain = models.DomainUnknown
			}),
			expected: "",
		},
		{
			name: "low confidence below 60",
			job: job("borderline", 55, func(a *models.AIJobAnalysis) {
				a.ConfidenceLevel = models.ConfidenceLow
			}),
			expected: ReasonLowConfidence,
		},
		{
			name: "low confidence with strong score survives",
			job: job("strong", 65, func(a *models.AIJobAnalysis) {
				a.ConfidenceLevel = models.ConfidenceLow
			}),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Exclude(tt.job))
		})
	}
}

func TestQualifySortsByScoreDescending(t *testing.T) {
	jobs := []models.StoredJob{
		job("mid", 60, nil),
		job("top", 90, nil),
		job("excluded", 20, nil),
		job("low", 45, nil),
	}

	qualified := Qualify(jobs)

	require.Len(t, qualified, 3)
	assert.Equal(t, "top", qualified[0].Title)
	assert.Equal(t, "mid", qualified[1].Title)
	assert.Equal(t, "low", qualified[2].Title)
}

func TestQualifyStableOnTies(t *testing.T) {
	jobs := []models.StoredJob{
		job("first", 50, nil),
		job("second", 50, nil),
		job("third", 50, nil),
	}

	qualified := Qualify(jobs)

	require.Len(t, qualified, 3)
	assert.Equal(t, "first", qualified[0].Title)
	assert.Equal(t, "second", qualified[1].Title)
	assert.Equal(t, "third", qualified[2].Title)
}

func TestQualifyEmptyInput(t *testing.T) {
	assert.Empty(t, Qualify(nil))
}
