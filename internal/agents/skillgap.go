// Package agents implements the stateless query handlers (skill gap
// analysis, job search, course recommendation) and the dispatcher that
// routes a classified intent to exactly one of them. Every agent is a
// pure function of its inputs and the shared knowledge base.
package agents

import (
	"fmt"
	"strings"

	"github.com/jsexpertdev/ostad-ai-agent/internal/knowledge"
	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
)

// SkillGapAgent compares a user's skills against a role's requirements.
type SkillGapAgent struct {
	kb *knowledge.Base
}

// NewSkillGapAgent creates a skill gap agent over the knowledge base.
func NewSkillGapAgent(kb *knowledge.Base) *SkillGapAgent {
	return &SkillGapAgent{kb: kb}
}

// Analyze reports which of the target role's required skills the user
// already has and which are missing. An unknown role yields an empty
// requirement list, not an error.
func (a *SkillGapAgent) Analyze(userSkills []string, targetJob string) types.AgentResult {
	if targetJob == "" {
		return types.AgentResult{
			Agent:    types.AgentSkillGap,
			Response: `Please specify the job role you're interested in (e.g., "data scientist", "web developer").`,
		}
	}

	requiredSkills := a.kb.RequiredSkills(targetJob)

	userSkillsLower := make(map[string]bool, len(userSkills))
	for _, skill := range userSkills {
		userSkillsLower[strings.ToLower(skill)] = true
	}

	// Missing skills keep the requirement list's order; matching skills
	// keep the user's original casing.
	var missingSkills []string
	for _, skill := range requiredSkills {
		if !userSkillsLower[strings.ToLower(skill)] {
			missingSkills = append(missingSkills, skill)
		}
	}

	var matchingSkills []string
	for _, skill := range userSkills {
		for _, required := range requiredSkills {
			if strings.EqualFold(skill, required) {
				matchingSkills = append(matchingSkills, skill)
				break
			}
		}
	}

	response := fmt.Sprintf("Great! You have all the required skills for a %s role.", targetJob)
	if len(missingSkills) > 0 {
		have := strings.Join(matchingSkills, ", ")
		if have == "" {
			have = "none of the required skills"
		}
		response = fmt.Sprintf("For a %s role, you're missing these key skills: %s. You already have: %s.",
			targetJob, strings.Join(missingSkills, ", "), have)
	}

	return types.AgentResult{
		Agent:          types.AgentSkillGap,
		TargetJob:      targetJob,
		UserSkills:     userSkills,
		RequiredSkills: requiredSkills,
		MatchingSkills: matchingSkills,
		MissingSkills:  missingSkills,
		Response:       response,
	}
}
