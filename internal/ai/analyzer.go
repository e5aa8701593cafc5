package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Divyashree2811/job-search-automation/internal/models"
)

// maxErrorFlagLen bounds the error text carried in the failure warning flag.
const maxErrorFlagLen = 50

// Analyzer orchestrates translation and structured extraction against a
// language-model backend. It is fail-open: a broken backend degrades the
// result to a flagged default, it never blocks the pipeline.
type Analyzer struct {
	client Client
}

func NewAnalyzer(client Client) *Analyzer {
	return &Analyzer{client: client}
}

// TranslateToEnglish translates German text with a single chat call. Non-German
// text is returned as-is without touching the network. Translation is
// best-effort: on any failure the original text comes back unchanged.
func (a *Analyzer) TranslateToEnglish(ctx context.Context, text string, isGerman bool) string {
	if !isGerman {
		return text
	}

	log.Println("🌐 Translating description to English...")
	response, err := a.client.Chat(ctx, []Message{
		{Role: "user", Content: buildTranslationPrompt(text)},
	})
	if err != nil {
		log.Printf("⚠️ Translation failed, using original text: %v", err)
		return text
	}
	return strings.TrimSpace(response)
}

// loosely-typed mirror of the extraction schema; enum fields arrive as plain
// strings and are coerced afterwards
type analysisPayload struct {
	RequiredSkills       []string `json:"requiredSkills"`
	TechStack            []string `json:"techStack"`
	ExperienceYears      string   `json:"experienceYears"`
	Benefits             []string `json:"benefits"`
	Summary              string   `json:"summary"`
	GermanRequired       bool     `json:"germanRequired"`
	LanguageRequirements []string `json:"languageRequirements"`
	JobDomain            string   `json:"jobDomain"`
	DescriptionQuality   string   `json:"descriptionQuality"`
	ConfidenceLevel      string   `json:"confidenceLevel"`
	WarningFlags         []string `json:"warningFlags"`
}

// Analyze runs one structured-extraction call and parses the response into an
// AIJobAnalysis. The response is treated as untrusted: the first balanced
// JSON object is located, decoded loosely, then coerced against the closed
// enums. Any backend or parse failure yields the defined default instead of
// an error.
func (a *Analyzer) Analyze(ctx context.Context, description string) models.AIJobAnalysis {
	log.Println("🤖 Analyzing job description with AI...")

	content, err := a.client.Chat(ctx, []Message{
		{Role: "user", Content: buildAnalysisPrompt(description)},
	})
	if err != nil {
		if errors.Is(err, ErrBackendUnreachable) {
			log.Printf("❌ AI analysis failed: cannot reach the model backend - is it running? (%v)", err)
		} else {
			log.Printf("❌ AI analysis failed: %v", err)
		}
		return failedAnalysis(err)
	}

	raw, err := extractFirstJSON(content)
	if err != nil {
		log.Printf("❌ AI analysis failed: %v. First 200 chars: %s", err, head(content, 200))
		return failedAnalysis(err)
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Printf("❌ AI analysis failed: invalid JSON: %v", err)
		return failedAnalysis(fmt.Errorf("invalid JSON: %w", err))
	}

	analysis := coerce(payload)
	log.Printf("✅ AI analysis complete (domain=%s, confidence=%s, germanRequired=%v)",
		analysis.JobDomain, analysis.ConfidenceLevel, analysis.GermanRequired)
	return analysis
}

// AnalyzeJob composes translate then analyze, and attaches the original and
// (when translated) working description for audit.
func (a *Analyzer) AnalyzeJob(ctx context.Context, description string, isGerman bool) models.AIJobAnalysis {
	working := description
	translated := ""
	if isGerman {
		translated = a.TranslateToEnglish(ctx, description, true)
		working = translated
	}

	analysis := a.Analyze(ctx, working)
	analysis.RawDescription = description
	if translated != "" && translated != description {
		analysis.TranslatedDescription = translated
	}
	return analysis
}

// coerce validates the loose payload against the schema: nil lists become
// empty, enum strings collapse to their closed variants, and a missing
// experience field defaults to "Not specified".
func coerce(p analysisPayload) models.AIJobAnalysis {
	experience := p.ExperienceYears
	if experience == "" {
		experience = "Not specified"
	}
	return models.AIJobAnalysis{
		RequiredSkills:       emptyIfNil(p.RequiredSkills),
		TechStack:            emptyIfNil(p.TechStack),
		ExperienceYears:      experience,
		Benefits:             emptyIfNil(p.Benefits),
		Summary:              p.Summary,
		GermanRequired:       p.GermanRequired,
		LanguageRequirements: emptyIfNil(p.LanguageRequirements),
		JobDomain:            models.ParseJobDomain(p.JobDomain),
		DescriptionQuality:   models.ParseDescriptionQuality(p.DescriptionQuality),
		ConfidenceLevel:      models.ParseConfidenceLevel(p.ConfidenceLevel),
		WarningFlags:         emptyIfNil(p.WarningFlags),
	}
}

// failedAnalysis is the defined fallback for any extraction failure. It is
// distinguishable from a genuine "nothing found" extraction by the failure
// flag in WarningFlags.
func failedAnalysis(cause error) models.AIJobAnalysis {
	return models.AIJobAnalysis{
		RequiredSkills:       []string{},
		TechStack:            []string{},
		ExperienceYears:      "Not specified",
		Benefits:             []string{},
		Summary:              "AI analysis not available",
		GermanRequired:       false,
		LanguageRequirements: []string{},
		JobDomain:            models.DomainUnknown,
		DescriptionQuality:   models.QualityIncomplete,
		ConfidenceLevel:      models.ConfidenceLow,
		WarningFlags:         []string{models.WarningFlagAnalysisFailed, head(cause.Error(), maxErrorFlagLen)},
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
