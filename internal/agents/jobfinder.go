package agents

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsexpertdev/ostad-ai-agent/internal/knowledge"
	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
)

// maxJobResults caps how many listings a single search returns.
const maxJobResults = 5

// JobFinderAgent searches the static job catalog by skill overlap and
// optional location filter.
type JobFinderAgent struct {
	kb *knowledge.Base
}

// NewJobFinderAgent creates a job finder agent over the knowledge base.
func NewJobFinderAgent(kb *knowledge.Base) *JobFinderAgent {
	return &JobFinderAgent{kb: kb}
}

// Find returns catalog jobs where at least one required skill matches a
// user skill (case-insensitive) and, when a location filter is given,
// the job's location contains it as a substring. Results are sorted by
// descending match count; ties keep catalog order.
func (a *JobFinderAgent) Find(userSkills []string, location string) types.AgentResult {
	locationLower := strings.ToLower(location)

	var matches []types.JobMatch
	for _, job := range a.kb.Jobs() {
		count := matchCount(job.RequiredSkills, userSkills)
		if count == 0 {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), locationLower) {
			continue
		}
		matches = append(matches, types.JobMatch{Job: job, MatchCount: count})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchCount > matches[j].MatchCount
	})
	if len(matches) > maxJobResults {
		matches = matches[:maxJobResults]
	}

	response := "No jobs found matching your current skills. Consider expanding your skill set!"
	if len(matches) > 0 {
		response = fmt.Sprintf("Found %d job opportunities matching your skills!", len(matches))
	}

	return types.AgentResult{
		Agent:    types.AgentJobFinder,
		Jobs:     matches,
		Response: response,
	}
}

// matchCount counts required skills matched by any user skill.
func matchCount(requiredSkills, userSkills []string) int {
	count := 0
	for _, required := range requiredSkills {
		for _, skill := range userSkills {
			if strings.EqualFold(required, skill) {
				count++
				break
			}
		}
	}
	return count
}
