package classifier

import "fmt"

// buildIntentPrompt constructs the fixed instruction template sent to the
// model for a single query. The reply must be exactly one JSON object
// matching the Intent shape.
func buildIntentPrompt(query string) string {
	return fmt.Sprintf(`Analyze this career query and return ONLY valid JSON:
Query: %q

Classify as: skill_gap, job_search, course_recommendation, or general
Extract: targetJob, location, skills if mentioned

Response format: {"type": "classification", "targetJob": "job_title_or_null", "location": "location_or_null", "skills": ["skill1", "skill2"]}

IMPORTANT:
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.
- Use null for targetJob or location when the query does not mention them.`, query)
}
