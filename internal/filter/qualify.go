package filter

import (
	"sort"

	"github.com/Divyashree2811/job-search-automation/internal/models"
)

// Exclusion reasons, used for run statistics.
type Reason string

const (
	ReasonGermanRequired Reason = "german_required"
	ReasonLowATS         Reason = "low_ats"
	ReasonWrongDomain    Reason = "wrong_domain"
	ReasonLowConfidence  Reason = "low_confidence"
)

// minQualifyingScore is the ATS floor for inclusion; low-confidence postings
// need minConfidentScore to survive.
const (
	minQualifyingScore = 40
	minConfidentScore  = 60
)

// Exclude returns the reason a stored job is excluded from the review list,
// or "" when it qualifies.
func Exclude(job models.StoredJob) Reason {
	analysis := job.JobDetails.AIAnalysis
	score := job.OverallScore()

	if analysis != nil && analysis.GermanRequired {
		return ReasonGermanRequired
	}
	if score < minQualifyingScore {
		return ReasonLowATS
	}
	if analysis != nil &&
		analysis.JobDomain != models.DomainSoftware &&
		analysis.JobDomain != models.DomainUnknown {
		return ReasonWrongDomain
	}
	if analysis != nil && analysis.ConfidenceLevel == models.ConfidenceLow && score < minConfidentScore {
		return ReasonLowConfidence
	}
	return ""
}

// Qualify filters jobs down to the ones worth reviewing and ranks them by
// ATS score, highest first. The sort is stable so equal scores keep their
// encounter order and the output is reproducible.
func Qualify(jobs []models.StoredJob) []models.StoredJob {
	var qualified []models.StoredJob
	for _, job := range jobs {
		if Exclude(job) == "" {
			qualified = append(qualified, job)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].OverallScore() > qualified[j].OverallScore()
	})
	return qualified
}
