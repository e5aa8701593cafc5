package models

// ResumeProfile is the static candidate capability set, loaded once per run
// and treated as read-only configuration.
type ResumeProfile struct {
	Skills          []string `yaml:"skills" json:"skills"`
	TechStack       []string `yaml:"tech_stack" json:"techStack"`
	ExperienceYears int      `yaml:"experience_years" json:"experienceYears"`
	Languages       []string `yaml:"languages" json:"languages"`
	Domains         []string `yaml:"domains" json:"domains"`
}

// ATSScore is the applicant-match result for one posting. Derived purely from
// an AIJobAnalysis and a ResumeProfile, recomputed fresh per posting.
type ATSScore struct {
	OverallScore    int      `json:"overallScore"` // 0-100, clamped
	SkillsMatch     int      `json:"skillsMatch"`  // percent
	TechStackMatch  int      `json:"techStackMatch"`
	ExperienceMatch bool     `json:"experienceMatch"`
	LanguageMatch   bool     `json:"languageMatch"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendation  string   `json:"recommendation"`
}
