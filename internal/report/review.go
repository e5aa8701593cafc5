package report

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Divyashree2811/job-search-automation/internal/models"
)

const reviewInstructions = "Review these jobs daily and apply to the ones that interest you. Mark as applied once done."

// ReviewEntry is the flattened per-job summary in the daily review file.
// Applied starts false and is flipped by hand during review.
type ReviewEntry struct {
	JobTitle              string   `json:"jobTitle"`
	Company               string   `json:"company"`
	CompanyLocation       string   `json:"companyLocation"`
	SalaryRange           string   `json:"salaryRange"`
	DatePosted            string   `json:"datePosted"`
	ATSScore              int      `json:"atsScore"`
	MatchedSkills         []string `json:"matchedSkills"`
	MissingSkills         []string `json:"missingSkills"`
	RequiredSkills        []string `json:"requiredSkills"`
	TechStack             []string `json:"techStack"`
	ExperienceYears       string   `json:"experienceYears"`
	Benefits              []string `json:"benefits"`
	Summary               string   `json:"summary"`
	JobDomain             string   `json:"jobDomain"`
	DescriptionQuality    string   `json:"descriptionQuality"`
	ConfidenceLevel       string   `json:"confidenceLevel"`
	WarningFlags          []string `json:"warningFlags"`
	RawDescription        string   `json:"rawDescription"`
	TranslatedDescription string   `json:"translatedDescription"`
	Applied               bool     `json:"applied"`
}

// ReviewList is the qualification review export, regenerated wholesale per run.
type ReviewList struct {
	GeneratedAt    string        `json:"generatedAt"`
	TotalQualified int           `json:"totalQualified"`
	Instructions   string        `json:"instructions"`
	Jobs           []ReviewEntry `json:"jobs"`
}

// BuildReviewList flattens ranked qualified jobs into the review shape.
// Jobs must already be filtered and sorted; this does no ranking of its own.
func BuildReviewList(jobs []models.StoredJob, now time.Time) ReviewList {
	entries := make([]ReviewEntry, 0, len(jobs))
	for _, job := range jobs {
		entries = append(entries, buildEntry(job))
	}
	return ReviewList{
		GeneratedAt:    now.UTC().Format(time.RFC3339),
		TotalQualified: len(entries),
		Instructions:   reviewInstructions,
		Jobs:           entries,
	}
}

func buildEntry(job models.StoredJob) ReviewEntry {
	entry := ReviewEntry{
		JobTitle:        job.Title,
		Company:         job.Company,
		CompanyLocation: job.JobDetails.CompanyLocation,
		SalaryRange:     job.JobDetails.SalaryRange,
		DatePosted:      job.PostedDate,
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		RequiredSkills:  []string{},
		TechStack:       []string{},
		Benefits:        []string{},
		WarningFlags:    []string{},
		JobDomain:       string(models.DomainUnknown),
		Applied:         false,
	}

	if score := job.JobDetails.ATSScore; score != nil {
		entry.ATSScore = score.OverallScore
		entry.MatchedSkills = score.MatchedSkills
		entry.MissingSkills = score.MissingSkills
	}
	if analysis := job.JobDetails.AIAnalysis; analysis != nil {
		entry.RequiredSkills = analysis.RequiredSkills
		entry.TechStack = analysis.TechStack
		entry.ExperienceYears = analysis.ExperienceYears
		entry.Benefits = analysis.Benefits
		entry.Summary = analysis.Summary
		entry.JobDomain = string(analysis.JobDomain)
		entry.DescriptionQuality = string(analysis.DescriptionQuality)
		entry.ConfidenceLevel = string(analysis.ConfidenceLevel)
		entry.WarningFlags = analysis.WarningFlags
		entry.RawDescription = analysis.RawDescription
		entry.TranslatedDescription = analysis.TranslatedDescription
	}
	if entry.RawDescription == "" {
		entry.RawDescription = job.JobDetails.Description
	}
	return entry
}

// SaveReviewList writes the review export to path.
func SaveReviewList(path string, jobs []models.StoredJob, now time.Time) error {
	list := BuildReviewList(jobs, now)
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal review list: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create review list dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write review list: %w", err)
	}
	log.Printf("📋 Saved %d qualified jobs to %s", list.TotalQualified, path)
	return nil
}
