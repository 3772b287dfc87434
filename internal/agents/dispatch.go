package agents

import (
	"github.com/jsexpertdev/ostad-ai-agent/internal/knowledge"
	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
)

// conversationPrompt is the reply for general or unrecognized intents.
const conversationPrompt = "I can help you with career planning! I can analyze skill gaps, find job opportunities, or recommend courses. What would you like to explore?"

// Dispatcher routes a classified intent to exactly one handler agent.
type Dispatcher struct {
	skillGap *SkillGapAgent
	jobs     *JobFinderAgent
	courses  *CourseRecommenderAgent
}

// NewDispatcher creates a dispatcher with all three agents sharing the
// same knowledge base.
func NewDispatcher(kb *knowledge.Base) *Dispatcher {
	return &Dispatcher{
		skillGap: NewSkillGapAgent(kb),
		jobs:     NewJobFinderAgent(kb),
		courses:  NewCourseRecommenderAgent(kb),
	}
}

// Dispatch invokes the agent for the intent's type. General and
// unrecognized intents get the static conversational prompt; dispatch
// itself has no side effects beyond delegating.
func (d *Dispatcher) Dispatch(intent types.Intent, userSkills []string) types.AgentResult {
	switch intent.Type {
	case types.IntentSkillGap:
		return d.skillGap.Analyze(userSkills, intent.TargetJob)
	case types.IntentJobSearch:
		return d.jobs.Find(userSkills, intent.Location)
	case types.IntentCourseRecommendation:
		return d.courses.Recommend(intent.Skills)
	case types.IntentGeneral:
		fallthrough
	default:
		return types.AgentResult{
			Agent:    types.AgentConversation,
			Response: conversationPrompt,
		}
	}
}
