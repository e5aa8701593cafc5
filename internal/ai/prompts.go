package ai

import "fmt"

// buildTranslationPrompt asks for a bare translation with no commentary.
func buildTranslationPrompt(text string) string {
	return fmt.Sprintf(`Translate the following German text to English. Return ONLY the English translation, no explanations or additional text.

German text:
%s`, text)
}

// buildAnalysisPrompt encodes the extraction schema and the
// anti-hallucination rules: every extracted value must be traceable to
// explicit text in the description, and absence of evidence means an empty
// value, never a guess.
func buildAnalysisPrompt(description string) string {
	return fmt.Sprintf(`You are analyzing a job description. Your task is to extract ONLY information that is EXPLICITLY stated in the text. DO NOT make assumptions or fill in missing information.

Analyze this job description and return a JSON object with these fields:
{
  "requiredSkills": ["skill1", "skill2", ...],
  "techStack": ["technology1", "technology2", ...],
  "experienceYears": "X years" or "Not specified",
  "benefits": ["benefit1", "benefit2", ...],
  "summary": "Brief 2-3 sentence summary",
  "germanRequired": true or false,
  "languageRequirements": ["language1", "language2", ...],
  "jobDomain": "software" or "biotech" or "healthcare" or "manufacturing" or "finance" or "other" or "unknown",
  "descriptionQuality": "complete" or "incomplete" or "generic",
  "confidenceLevel": "high" or "medium" or "low",
  "warningFlags": ["flag1", "flag2", ...]
}

CRITICAL ANTI-HALLUCINATION RULES:
- DO NOT invent skills that are not explicitly mentioned
- DO NOT assume technologies based on job title
- DO NOT fill in missing information with guesses
- ONLY extract information that is clearly stated in the text
- Return EMPTY ARRAYS if information is not found
- Add warning flags for any uncertainties

FIELD EXTRACTION RULES:

1. requiredSkills: Extract ONLY skills explicitly mentioned in requirements/qualifications section
   - Must be stated in text (e.g., "Python", "Agile", "API testing")
   - DO NOT infer from job title (e.g., don't assume "QA Lead" means "test automation")
   - Return [] if requirements section is missing

2. techStack: Extract ONLY specific tools/technologies explicitly named
   - Must be actual tool names (e.g., "Jenkins", "Docker", "AWS")
   - DO NOT add generic categories (e.g., "test automation framework" is NOT a tech)
   - Return [] if no technologies are mentioned

3. jobDomain: Determine the industry/field based on keywords:
   - "software" if: software development, QA automation, DevOps, web/mobile apps
   - "biotech" if: biologics, pharmaceuticals, drug development, clinical trials
   - "healthcare" if: medical, patient care, hospital, clinical (non-research)
   - "manufacturing" if: production, assembly, factory, industrial
   - "finance" if: banking, trading, insurance, accounting
   - "unknown" if: description is too generic or incomplete to determine

4. descriptionQuality:
   - "complete": Contains detailed requirements, qualifications, responsibilities
   - "incomplete": Missing key sections (requirements OR qualifications OR responsibilities)
   - "generic": Only marketing text, no specific job details

5. confidenceLevel:
   - "high": Description is detailed, clear domain, specific requirements
   - "medium": Some details but missing key sections
   - "low": Generic text or unclear role

6. warningFlags: Add warnings for issues like:
   - "missing_requirements" - No requirements/qualifications section
   - "generic_description" - Only marketing/company info
   - "unclear_domain" - Can't determine if software, biotech, etc.
   - "domain_mismatch" - Job title suggests one domain but description suggests another
   - "external_redirect" - Might be external job link with incomplete scraping

7. germanRequired:
   - TRUE if: German is MANDATORY/REQUIRED in requirements with proficiency levels (A1-C2, fliessend, etc.)
   - FALSE if: German not mentioned OR explicitly optional OR just "nice to have"

8. languageRequirements: Extract ALL language requirements with details
   - Format: ["English (B2+)", "German (fluent)", "Spanish (conversational)"]
   - Include proficiency levels if mentioned (A1-C2, B1+, fluent, native, conversational, etc.)
   - Extract from requirements/qualifications section
   - Mark as REQUIRED or OPTIONAL based on context
   - Examples:
     * "Good level of English (B1+) and Russian" -> ["English (B1+, required)", "Russian (required)"]
     * "German fluent, English nice to have" -> ["German (fluent, required)", "English (optional)"]
     * "Native English speaker" -> ["English (native, required)"]
   - Return [] if no language requirements mentioned

Job Description:
%s

Return ONLY valid JSON, no explanations.`, description)
}
