package agents

import (
	"testing"

	"github.com/jsexpertdev/ostad-ai-agent/internal/knowledge"
	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_SkillOverlapNoLocation(t *testing.T) {
	agent := NewJobFinderAgent(knowledge.New())

	result := agent.Find([]string{"React"}, "")

	assert.Equal(t, types.AgentJobFinder, result.Agent)
	require.Len(t, result.Jobs, 2)
	// Equal match counts keep catalog order: Frontend Developer is
	// listed before Full Stack Developer.
	assert.Equal(t, "Frontend Developer", result.Jobs[0].Title)
	assert.Equal(t, 1, result.Jobs[0].MatchCount)
	assert.Equal(t, "Full Stack Developer", result.Jobs[1].Title)
	assert.Equal(t, 1, result.Jobs[1].MatchCount)
	assert.Equal(t, "Found 2 job opportunities matching your skills!", result.Response)
}

func TestFind_SortedByMatchCountDescending(t *testing.T) {
	agent := NewJobFinderAgent(knowledge.New())

	result := agent.Find([]string{"JavaScript", "React", "Node.js"}, "")

	require.Len(t, result.Jobs, 2)
	assert.Equal(t, "Full Stack Developer", result.Jobs[0].Title)
	assert.Equal(t, 3, result.Jobs[0].MatchCount)
	assert.Equal(t, "Frontend Developer", result.Jobs[1].Title)
	assert.Equal(t, 2, result.Jobs[1].MatchCount)
}

func TestFind_CaseInsensitiveSkillMatch(t *testing.T) {
	agent := NewJobFinderAgent(knowledge.New())

	result := agent.Find([]string{"PYTHON", "sql"}, "")

	require.NotEmpty(t, result.Jobs)
	assert.Equal(t, "Junior Data Scientist", result.Jobs[0].Title)
	assert.Equal(t, 2, result.Jobs[0].MatchCount)
}

func TestFind_LocationSubstringFilter(t *testing.T) {
	agent := NewJobFinderAgent(knowledge.New())

	result := agent.Find([]string{"Python"}, "chicago")

	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "Data Analyst", result.Jobs[0].Title)
	assert.Equal(t, "Chicago, IL", result.Jobs[0].Location)
}

func TestFind_LocationFilterExcludesEverything(t *testing.T) {
	agent := NewJobFinderAgent(knowledge.New())

	result := agent.Find([]string{"Python"}, "tokyo")

	assert.Empty(t, result.Jobs)
	assert.Equal(t, "No jobs found matching your current skills. Consider expanding your skill set!", result.Response)
}

func TestFind_NoSkillMatch(t *testing.T) {
	agent := NewJobFinderAgent(knowledge.New())

	result := agent.Find([]string{"Underwater Basket Weaving"}, "")

	assert.Empty(t, result.Jobs)
	assert.Contains(t, result.Response, "No jobs found")
}

func TestFind_EmptyUserSkills(t *testing.T) {
	agent := NewJobFinderAgent(knowledge.New())

	result := agent.Find(nil, "")

	assert.Empty(t, result.Jobs)
}

func TestFind_Idempotent(t *testing.T) {
	agent := NewJobFinderAgent(knowledge.New())

	first := agent.Find([]string{"React", "SQL"}, "")
	second := agent.Find([]string{"React", "SQL"}, "")

	assert.Equal(t, first, second)
}
