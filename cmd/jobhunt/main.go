package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/Divyashree2811/job-search-automation/internal/ai"
	"github.com/Divyashree2811/job-search-automation/internal/ats"
	"github.com/Divyashree2811/job-search-automation/internal/config"
	"github.com/Divyashree2811/job-search-automation/internal/filter"
	"github.com/Divyashree2811/job-search-automation/internal/models"
	"github.com/Divyashree2811/job-search-automation/internal/pipeline"
	"github.com/Divyashree2811/job-search-automation/internal/report"
	"github.com/Divyashree2811/job-search-automation/internal/store"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	inputPath := flag.String("input", "data/extracted-jobs.json", "path to raw postings extracted by the scraper")
	flag.Parse()

	//load config
	cfg := config.Load(*configPath)
	log.Printf("🔧 Config loaded. Key skills watch-list: %v", cfg.KeySkills)

	//load resume profile - scoring without one is a wiring bug
	profile, err := ats.LoadProfile(cfg.ResumeProfilePath)
	if err != nil {
		log.Fatalf("❌ Failed to load resume profile: %v", err)
	}
	log.Printf("✅ Resume profile loaded (%d skills, %d technologies, %d+ years)",
		len(profile.Skills), len(profile.TechStack), profile.ExperienceYears)

	//read raw postings produced by the external scraper
	postings, err := readPostings(*inputPath)
	if err != nil {
		log.Fatalf("❌ Failed to read extracted postings: %v", err)
	}
	log.Printf("📦 Loaded %d extracted postings from %s", len(postings), *inputPath)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	//wire the pipeline
	db := store.New(cfg.DatabasePath, store.Options{KeySkills: cfg.KeySkills})
	analyzer := ai.NewAnalyzer(ai.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel))
	scorer := ats.NewScorer(profile)
	pipe := pipeline.New(db, analyzer, scorer, cfg.GermanThreshold)

	log.Println("🚀 Starting job analysis pipeline...")
	processed, stats := pipe.Run(ctx, postings)

	log.Printf("\n🎯 QUALIFIED JOBS FOUND: %d out of %d analyzed", stats.Qualified, stats.Total)
	log.Printf("⏭️ SKIPPED (already analyzed): %d", stats.Skipped)
	log.Printf("⚠️ SKIPPED (German required): %d", stats.GermanRequired)
	log.Printf("❌ LOW MATCH (ATS < 40): %d", stats.LowATS)
	log.Printf("🔬 WRONG DOMAIN (non-software): %d", stats.WrongDomain)
	log.Printf("⚠️ LOW CONFIDENCE (incomplete description): %d", stats.LowConfidence)

	//rank and export the daily review list
	qualified := filter.Qualify(processed)
	if len(qualified) > 0 {
		if err := report.SaveReviewList(cfg.ReviewListPath, qualified, time.Now()); err != nil {
			log.Printf("⚠️ Failed to save review list: %v", err)
		}
	} else {
		log.Println("⚠️ No qualified jobs found in this batch.")
	}

	//refresh the important-jobs artifact
	if err := db.SaveImportantJobs(cfg.ImportantJobsPath); err != nil {
		log.Printf("⚠️ Failed to save important jobs: %v", err)
	}

	//retention pruning
	if removed := db.PruneOlderThan(cfg.RetentionDays); removed > 0 {
		log.Printf("🗑️ Pruned %d stale records", removed)
	}

	//optional telegram notifications
	if cfg.TelegramEnabled() {
		notifier, err := report.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram notifier: %v", err)
		} else {
			for _, job := range qualified {
				if err := notifier.SendQualifiedJob(job); err != nil {
					log.Printf("⚠️ Failed to send job notification: %v", err)
				}
			}
			if err := notifier.SendRunSummary(stats.Total, stats.Qualified, stats.GermanRequired); err != nil {
				log.Printf("⚠️ Failed to send run summary: %v", err)
			}
		}
	}

	dbStats := db.Stats()
	log.Printf("\n📊 Database: %d total, %d analyzed today, %d German-required, %d qualified (ATS ≥ 70)",
		dbStats.Total, dbStats.AnalyzedToday, dbStats.GermanRequired, dbStats.Qualified)
	log.Println("✅ Pipeline run complete")
}

func readPostings(path string) ([]models.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var postings []models.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, err
	}
	return postings, nil
}
