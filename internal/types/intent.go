// Package types provides type definitions for structured data used throughout the career advisor system.
package types

// IntentType classifies what the user is asking for.
type IntentType string

// Intent type constants define the supported query classifications.
const (
	// IntentSkillGap asks which skills are missing for a target role
	IntentSkillGap IntentType = "skill_gap"
	// IntentJobSearch asks for matching job openings
	IntentJobSearch IntentType = "job_search"
	// IntentCourseRecommendation asks for courses to learn named skills
	IntentCourseRecommendation IntentType = "course_recommendation"
	// IntentGeneral is everything else; answered with a conversational prompt
	IntentGeneral IntentType = "general"
)

// Valid reports whether t is one of the known intent types.
func (t IntentType) Valid() bool {
	switch t {
	case IntentSkillGap, IntentJobSearch, IntentCourseRecommendation, IntentGeneral:
		return true
	}
	return false
}

// Intent is the structured classification of a single user query.
// It is produced fresh per query and never stored.
type Intent struct {
	Type      IntentType `json:"type"`
	TargetJob string     `json:"targetJob,omitempty"`
	Location  string     `json:"location,omitempty"`
	Skills    []string   `json:"skills,omitempty"`
}
