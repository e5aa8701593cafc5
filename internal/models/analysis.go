package models

// Closed string unions for the AI extraction contract. Values arriving from
// the model that are not listed here are coerced to the fallback variant
// instead of being stored verbatim.

type JobDomain string

const (
	DomainSoftware      JobDomain = "software"
	DomainBiotech       JobDomain = "biotech"
	DomainHealthcare    JobDomain = "healthcare"
	DomainManufacturing JobDomain = "manufacturing"
	DomainFinance       JobDomain = "finance"
	DomainOther         JobDomain = "other"
	DomainUnknown       JobDomain = "unknown"
)

type DescriptionQuality string

const (
	QualityComplete   DescriptionQuality = "complete"
	QualityIncomplete DescriptionQuality = "incomplete"
	QualityGeneric    DescriptionQuality = "generic"
)

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ParseJobDomain coerces an arbitrary string to a known domain, "unknown" otherwise.
func ParseJobDomain(s string) JobDomain {
	switch JobDomain(s) {
	case DomainSoftware, DomainBiotech, DomainHealthcare, DomainManufacturing, DomainFinance, DomainOther, DomainUnknown:
		return JobDomain(s)
	}
	return DomainUnknown
}

// ParseDescriptionQuality coerces to a known quality, "incomplete" otherwise.
func ParseDescriptionQuality(s string) DescriptionQuality {
	switch DescriptionQuality(s) {
	case QualityComplete, QualityIncomplete, QualityGeneric:
		return DescriptionQuality(s)
	}
	return QualityIncomplete
}

// ParseConfidenceLevel coerces to a known level, "low" otherwise.
func ParseConfidenceLevel(s string) ConfidenceLevel {
	switch ConfidenceLevel(s) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return ConfidenceLevel(s)
	}
	return ConfidenceLow
}

// WarningFlagAnalysisFailed marks an analysis record produced by the failure
// fallback rather than a genuine extraction. Callers that need to tell
// "analysis failed" from "nothing found" must check for it.
const WarningFlagAnalysisFailed = "ai_analysis_failed"

// AIJobAnalysis is the structured extraction from a job description. Every
// field must be traceable to explicit text in the source description; absence
// of evidence means an empty or negative value, never an inferred one.
type AIJobAnalysis struct {
	RequiredSkills        []string           `json:"requiredSkills"`
	TechStack             []string           `json:"techStack"`
	ExperienceYears       string             `json:"experienceYears"`
	Benefits              []string           `json:"benefits"`
	Summary               string             `json:"summary"`
	GermanRequired        bool               `json:"germanRequired"`
	LanguageRequirements  []string           `json:"languageRequirements"`
	JobDomain             JobDomain          `json:"jobDomain"`
	DescriptionQuality    DescriptionQuality `json:"descriptionQuality"`
	ConfidenceLevel       ConfidenceLevel    `json:"confidenceLevel"`
	WarningFlags          []string           `json:"warningFlags"`
	RawDescription        string             `json:"rawDescription,omitempty"`
	TranslatedDescription string             `json:"translatedDescription,omitempty"`
}

// Failed reports whether this analysis is the failure fallback.
func (a AIJobAnalysis) Failed() bool {
	for _, f := range a.WarningFlags {
		if f == WarningFlagAnalysisFailed {
			return true
		}
	}
	return false
}
