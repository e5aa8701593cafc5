package store

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Divyashree2811/job-search-automation/internal/dates"
	"github.com/Divyashree2811/job-search-automation/internal/models"
)

// DefaultKeySkills is the watch-list used to flag important jobs when the
// config does not supply one. Inherited defaults, tune per candidate.
var DefaultKeySkills = []string{"playwright", "python", "typescript"}

// Options tunes a JobDatabase beyond its file path.
type Options struct {
	//KeySkills is the important-jobs watch-list, matched as lowercase substrings
	KeySkills []string
}

// JobDatabase owns the analyzed-jobs collection: a content-addressed map of
// StoredJob keyed by identity hash, mirrored to a JSON file on every
// mutation. The full file is rewritten each time; posting volume is tens to
// low hundreds per run, so simplicity wins over throughput.
type JobDatabase struct {
	mu        sync.Mutex
	path      string
	keySkills []string
	jobs      map[string]models.StoredJob
	now       func() time.Time
}

type dbFile struct {
	LastUpdated string             `json:"lastUpdated"`
	TotalJobs   int                `json:"totalJobs"`
	Jobs        []models.StoredJob `json:"jobs"`
}

// New loads (or creates) the database at path. A missing or corrupt file is
// not fatal: the store starts empty and logs the problem, because the
// collection is a re-derivable cache.
func New(path string, opts Options) *JobDatabase {
	keySkills := opts.KeySkills
	if len(keySkills) == 0 {
		keySkills = DefaultKeySkills
	}
	db := &JobDatabase{
		path:      path,
		keySkills: keySkills,
		jobs:      make(map[string]models.StoredJob),
		now:       time.Now,
	}
	db.load()
	return db
}

// ComputeIdentity derives the dedup key for a posting: each field is
// lowercased, trimmed and diacritic-folded, the tuple joined with "_" and
// hashed. The description is deliberately excluded so re-scraped or edited
// versions of the same listing collide.
func ComputeIdentity(title, company, location string, postedDate time.Time) string {
	normalized := fmt.Sprintf("%s_%s_%s_%s",
		normalizeField(title),
		normalizeField(company),
		normalizeField(location),
		dates.FormatDate(postedDate),
	)
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// normalizeField lowercases, trims and strips diacritics so "Zürich" and
// "Zurich" produce the same identity.
func normalizeField(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// IsAnalyzed reports whether a posting with these raw fields is already in
// the store. Safe to call before any extraction or analysis work; this is
// the cache gate the scraper uses to decide whether to open a posting at all.
func (db *JobDatabase) IsAnalyzed(title, company, location, postedDate string) bool {
	id := db.identityFromRaw(title, company, location, postedDate)
	db.mu.Lock()
	defer db.mu.Unlock()
	_, ok := db.jobs[id]
	return ok
}

// AddJob stores the posting under its identity, overwriting any existing
// record with the same identity, and persists synchronously before
// returning. Returns the identity hash.
func (db *JobDatabase) AddJob(posting models.JobPosting) string {
	now := db.now()
	actualDate := dates.Normalize(posting.PostedDate, now)
	id := ComputeIdentity(posting.Title, posting.Company, posting.CompanyLocation, actualDate)

	stored := models.StoredJob{
		ID:         id,
		Title:      posting.Title,
		Company:    posting.Company,
		PostedDate: dates.FormatDate(actualDate),
		AnalyzedAt: now.UTC().Format(time.RFC3339),
		JobDetails: posting,
		Platform:   posting.Platform,
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	db.jobs[id] = stored
	db.save()
	log.Printf("💾 Saved to database (%s) - Total: %d jobs", posting.Platform, len(db.jobs))
	return id
}

// GetJob looks up a stored job by its raw fields. The bool is false when no
// record exists for the computed identity.
func (db *JobDatabase) GetJob(title, company, location, postedDate string) (models.StoredJob, bool) {
	id := db.identityFromRaw(title, company, location, postedDate)
	db.mu.Lock()
	defer db.mu.Unlock()
	job, ok := db.jobs[id]
	return job, ok
}

// GetAllJobs returns every stored record, ordered by identity for
// reproducible output.
func (db *JobDatabase) GetAllJobs() []models.StoredJob {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.sortedJobsLocked()
}

// GetJobsAnalyzedToday returns records whose analysis timestamp falls on the
// current date.
func (db *JobDatabase) GetJobsAnalyzedToday() []models.StoredJob {
	today := dates.FormatDate(db.now().UTC())
	var out []models.StoredJob
	for _, job := range db.GetAllJobs() {
		if strings.HasPrefix(job.AnalyzedAt, today) {
			out = append(out, job)
		}
	}
	return out
}

// PruneOlderThan removes records analyzed more than days ago and returns how
// many were removed. Persists only when something was removed, so repeated
// calls with nothing eligible are free.
func (db *JobDatabase) PruneOlderThan(days int) int {
	cutoff := db.now().AddDate(0, 0, -days)

	db.mu.Lock()
	defer db.mu.Unlock()

	removed := 0
	for id, job := range db.jobs {
		analyzedAt, err := time.Parse(time.RFC3339, job.AnalyzedAt)
		if err != nil {
			continue
		}
		if analyzedAt.Before(cutoff) {
			delete(db.jobs, id)
			removed++
		}
	}

	if removed > 0 {
		db.save()
		log.Printf("🗑️ Removed %d jobs older than %d days", removed, days)
	}
	return removed
}

// ShouldSkip reports whether a posting is categorically excluded because its
// analysis marked German as mandatory. Pure predicate, no mutation.
func (db *JobDatabase) ShouldSkip(posting models.JobPosting) bool {
	return posting.AIAnalysis != nil && posting.AIAnalysis.GermanRequired
}

// IsImportant reports whether the posting's required skills or tech stack
// contain any watch-list entry as a case-folded substring.
func (db *JobDatabase) IsImportant(posting models.JobPosting) bool {
	if posting.AIAnalysis == nil {
		return false
	}
	all := mapset.NewThreadUnsafeSet[string]()
	for _, s := range posting.AIAnalysis.RequiredSkills {
		all.Add(strings.ToLower(s))
	}
	for _, t := range posting.AIAnalysis.TechStack {
		all.Add(strings.ToLower(t))
	}
	for _, key := range db.keySkills {
		for _, entry := range all.ToSlice() {
			if strings.Contains(entry, strings.ToLower(key)) {
				return true
			}
		}
	}
	return false
}

// GetImportantJobs returns stored jobs that are not German-mandatory and hit
// the watch-list.
func (db *JobDatabase) GetImportantJobs() []models.StoredJob {
	var out []models.StoredJob
	for _, job := range db.GetAllJobs() {
		if job.GermanRequired() {
			continue
		}
		if db.IsImportant(job.JobDetails) {
			out = append(out, job)
		}
	}
	return out
}

// SaveImportantJobs writes the important subset to its own file, regenerated
// wholesale on each call.
func (db *JobDatabase) SaveImportantJobs(path string) error {
	important := db.GetImportantJobs()
	payload := dbFile{
		LastUpdated: db.now().UTC().Format(time.RFC3339),
		TotalJobs:   len(important),
		Jobs:        important,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal important jobs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create important jobs dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write important jobs: %w", err)
	}
	log.Printf("💾 Saved %d important jobs to %s", len(important), path)
	return nil
}

// Stats summarizes the collection for end-of-run reporting.
type Stats struct {
	Total          int
	AnalyzedToday  int
	GermanRequired int
	Qualified      int // non-German jobs with ATS score >= 70
}

func (db *JobDatabase) Stats() Stats {
	all := db.GetAllJobs()
	stats := Stats{
		Total:         len(all),
		AnalyzedToday: len(db.GetJobsAnalyzedToday()),
	}
	for _, job := range all {
		if job.GermanRequired() {
			stats.GermanRequired++
			continue
		}
		if job.OverallScore() >= 70 {
			stats.Qualified++
		}
	}
	return stats
}

func (db *JobDatabase) identityFromRaw(title, company, location, postedDate string) string {
	actualDate := dates.Normalize(postedDate, db.now())
	return ComputeIdentity(title, company, location, actualDate)
}

func (db *JobDatabase) sortedJobsLocked() []models.StoredJob {
	out := make([]models.StoredJob, 0, len(db.jobs))
	for _, job := range db.jobs {
		out = append(out, job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// load reads the collection from disk into the in-memory map. Read or parse
// failures leave the store empty rather than failing construction.
func (db *JobDatabase) load() {
	if err := os.MkdirAll(filepath.Dir(db.path), 0755); err != nil {
		log.Printf("⚠️ Failed to create data directory: %v", err)
	}

	data, err := os.ReadFile(db.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read job database: %v", err)
		} else {
			log.Printf("📁 No existing database found - creating new one")
		}
		return
	}

	var file dbFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Printf("⚠️ Failed to parse job database, starting empty: %v", err)
		return
	}

	for _, job := range file.Jobs {
		db.jobs[job.ID] = job
	}
	log.Printf("📁 Loaded %d previously analyzed jobs from database", len(db.jobs))
}

// save writes the whole collection to disk. Write failures are logged, not
// retried; the store is a best-effort cache.
func (db *JobDatabase) save() {
	file := dbFile{
		LastUpdated: db.now().UTC().Format(time.RFC3339),
		TotalJobs:   len(db.jobs),
		Jobs:        db.sortedJobsLocked(),
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal job database: %v", err)
		return
	}
	if err := os.WriteFile(db.path, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write job database: %v", err)
	}
}
