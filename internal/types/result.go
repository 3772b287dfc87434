package types

// AgentKind identifies which agent produced a result.
type AgentKind string

// Agent kind constants tag AgentResult variants.
const (
	// AgentSkillGap tags results from the skill gap analyzer
	AgentSkillGap AgentKind = "skill_gap"
	// AgentJobFinder tags results from the job finder
	AgentJobFinder AgentKind = "job_finder"
	// AgentCourseRecommender tags results from the course recommender
	AgentCourseRecommender AgentKind = "course_recommender"
	// AgentConversation tags the generic conversational reply
	AgentConversation AgentKind = "conversation"
)

// Job is a single entry in the static job catalog.
type Job struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	RequiredSkills []string `json:"skills"`
	SalaryRange    string   `json:"salary"`
}

// JobMatch is a catalog entry annotated with how many of its required
// skills the user already has.
type JobMatch struct {
	Job
	MatchCount int `json:"matchCount"`
}

// Course is a single course recommendation for a skill.
type Course struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

// AgentResult is the discriminated result of one agent invocation.
// Agent selects the variant; only the fields belonging to that variant
// are populated, the rest are omitted from the JSON encoding.
type AgentResult struct {
	Agent    AgentKind `json:"agent"`
	Response string    `json:"response"`

	// Skill gap variant
	TargetJob      string   `json:"targetJob,omitempty"`
	UserSkills     []string `json:"userSkills,omitempty"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
	MatchingSkills []string `json:"matchingSkills,omitempty"`
	MissingSkills  []string `json:"missingSkills,omitempty"`

	// Job finder variant
	Jobs []JobMatch `json:"jobs,omitempty"`

	// Course recommender variant
	Recommendations map[string][]Course `json:"recommendations,omitempty"`
}
