package agents

import (
	"fmt"
	"strings"

	"github.com/jsexpertdev/ostad-ai-agent/internal/knowledge"
	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
)

// CourseRecommenderAgent looks up courses for canonical skill names.
type CourseRecommenderAgent struct {
	kb *knowledge.Base
}

// NewCourseRecommenderAgent creates a course recommender over the
// knowledge base.
func NewCourseRecommenderAgent(kb *knowledge.Base) *CourseRecommenderAgent {
	return &CourseRecommenderAgent{kb: kb}
}

// Recommend returns course lists keyed by skill for every input skill
// with a catalog entry. The lookup is exact against canonical names;
// unknown skills are silently omitted.
func (a *CourseRecommenderAgent) Recommend(skills []string) types.AgentResult {
	if len(skills) == 0 {
		return types.AgentResult{
			Agent:    types.AgentCourseRecommender,
			Response: "Please specify which skills you'd like to learn.",
		}
	}

	recommendations := make(map[string][]types.Course)
	var found []string
	for _, skill := range skills {
		courses := a.kb.Courses(skill)
		if courses == nil {
			continue
		}
		if _, ok := recommendations[skill]; !ok {
			found = append(found, skill)
		}
		recommendations[skill] = courses
	}

	response := "No courses found for the specified skills. Try more general skill terms."
	if len(found) > 0 {
		response = fmt.Sprintf("Found course recommendations for: %s", strings.Join(found, ", "))
	}

	return types.AgentResult{
		Agent:           types.AgentCourseRecommender,
		Recommendations: recommendations,
		Response:        response,
	}
}
