package pipeline

import (
	"context"
	"log"

	"github.com/Divyashree2811/job-search-automation/internal/ai"
	"github.com/Divyashree2811/job-search-automation/internal/ats"
	"github.com/Divyashree2811/job-search-automation/internal/filter"
	"github.com/Divyashree2811/job-search-automation/internal/lang"
	"github.com/Divyashree2811/job-search-automation/internal/models"
	"github.com/Divyashree2811/job-search-automation/internal/store"
)

// Stats summarizes one run for the end-of-run report.
type Stats struct {
	Total          int
	Skipped        int // already analyzed, cache hit
	Qualified      int
	GermanRequired int
	LowATS         int
	WrongDomain    int
	LowConfidence  int
}

// Pipeline drives one posting at a time through normalize → identity-check →
// analyze → score → persist. Strictly sequential; the external scraper owns
// pagination and pacing.
type Pipeline struct {
	db              *store.JobDatabase
	analyzer        *ai.Analyzer
	scorer          *ats.Scorer
	germanThreshold int
}

func New(db *store.JobDatabase, analyzer *ai.Analyzer, scorer *ats.Scorer, germanThreshold int) *Pipeline {
	return &Pipeline{
		db:              db,
		analyzer:        analyzer,
		scorer:          scorer,
		germanThreshold: germanThreshold,
	}
}

// Process runs one raw posting through the pipeline. Returns the stored
// record and true, or a zero record and false when the posting was already
// analyzed and skipped.
func (p *Pipeline) Process(ctx context.Context, posting models.JobPosting) (models.StoredJob, bool) {
	if p.db.IsAnalyzed(posting.Title, posting.Company, posting.CompanyLocation, posting.PostedDate) {
		log.Printf("⏭️ Already analyzed: %s at %s", posting.Title, posting.Company)
		return models.StoredJob{}, false
	}

	posting.IsGerman = lang.DetectGerman(posting.Description, p.germanThreshold)
	posting.Languages = lang.ExtractLanguages(posting.Description)
	language := "English"
	if posting.IsGerman {
		language = "German"
	}
	log.Printf("ℹ️ Description language: %s", language)

	analysis := p.analyzer.AnalyzeJob(ctx, posting.Description, posting.IsGerman)
	posting.AIAnalysis = &analysis

	score := p.scorer.Score(
		analysis.RequiredSkills,
		analysis.TechStack,
		analysis.ExperienceYears,
		analysis.LanguageRequirements,
		analysis.GermanRequired,
	)
	posting.ATSScore = &score

	p.db.AddJob(posting)
	stored, _ := p.db.GetJob(posting.Title, posting.Company, posting.CompanyLocation, posting.PostedDate)
	return stored, true
}

// Run processes postings sequentially and returns the newly stored jobs plus
// run statistics broken down by exclusion reason.
func (p *Pipeline) Run(ctx context.Context, postings []models.JobPosting) ([]models.StoredJob, Stats) {
	stats := Stats{Total: len(postings)}
	var processed []models.StoredJob

	for _, posting := range postings {
		stored, ok := p.Process(ctx, posting)
		if !ok {
			stats.Skipped++
			continue
		}
		processed = append(processed, stored)

		switch filter.Exclude(stored) {
		case filter.ReasonGermanRequired:
			stats.GermanRequired++
		case filter.ReasonLowATS:
			stats.LowATS++
		case filter.ReasonWrongDomain:
			stats.WrongDomain++
		case filter.ReasonLowConfidence:
			stats.LowConfidence++
		default:
			stats.Qualified++
		}
	}

	return processed, stats
}
