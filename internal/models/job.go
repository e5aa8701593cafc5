package models

type Platform string

const (
	PlatformXing     Platform = "xing"
	PlatformLinkedIn Platform = "linkedin"
)

// JobPosting is the raw extraction handed over by the external scraper.
// All fields are plain strings, possibly empty; PostedDate may be relative
// ("2 days ago", "vor 3 Wochen") or absolute.
type JobPosting struct {
	Title           string         `json:"jobTitle"`
	Company         string         `json:"company"`
	CompanyLocation string         `json:"companyLocation"`
	SalaryRange     string         `json:"salaryRange,omitempty"`
	PostedDate      string         `json:"datePosted"`
	Description     string         `json:"description"`
	IsGerman        bool           `json:"isGerman"`
	Platform        Platform       `json:"platform"`
	Languages       []string       `json:"languages,omitempty"`
	AIAnalysis      *AIJobAnalysis `json:"aiAnalysis,omitempty"`
	ATSScore        *ATSScore      `json:"atsScore,omitempty"`
}

// StoredJob is the durable record owned by the store. JobDetails carries the
// full enriched posting including analysis and score.
type StoredJob struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	PostedDate string     `json:"postedDate"` // YYYY-MM-DD, never relative
	AnalyzedAt string     `json:"analyzedAt"` // ISO-8601
	JobDetails JobPosting `json:"jobDetails"`
	Platform   Platform   `json:"platform"`
}

// OverallScore returns the ATS score of the stored job, 0 when unscored.
func (j StoredJob) OverallScore() int {
	if j.JobDetails.ATSScore == nil {
		return 0
	}
	return j.JobDetails.ATSScore.OverallScore
}

// GermanRequired reports whether the AI analysis marked German as mandatory.
func (j StoredJob) GermanRequired() bool {
	return j.JobDetails.AIAnalysis != nil && j.JobDetails.AIAnalysis.GermanRequired
}
