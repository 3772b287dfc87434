package agents

import (
	"testing"

	"github.com/jsexpertdev/ostad-ai-agent/internal/knowledge"
	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_NoTargetJob(t *testing.T) {
	agent := NewSkillGapAgent(knowledge.New())

	result := agent.Analyze([]string{"Python"}, "")

	assert.Equal(t, types.AgentSkillGap, result.Agent)
	assert.Contains(t, result.Response, "Please specify the job role")
	assert.Empty(t, result.RequiredSkills)
	assert.Empty(t, result.MissingSkills)
}

func TestAnalyze_PartialMatch(t *testing.T) {
	agent := NewSkillGapAgent(knowledge.New())

	result := agent.Analyze([]string{"Python", "SQL"}, "data scientist")

	assert.Equal(t, types.AgentSkillGap, result.Agent)
	assert.Equal(t, "data scientist", result.TargetJob)
	assert.Equal(t, []string{"Python", "SQL"}, result.MatchingSkills)
	// Missing skills keep the requirement table's order.
	assert.Equal(t, []string{"Machine Learning", "Statistics", "Pandas", "NumPy", "Scikit-learn", "Data Visualization"}, result.MissingSkills)
	assert.Contains(t, result.Response, "you're missing these key skills")
	assert.Contains(t, result.Response, "Machine Learning")
}

func TestAnalyze_CaseInsensitiveButCasingPreserved(t *testing.T) {
	agent := NewSkillGapAgent(knowledge.New())

	result := agent.Analyze([]string{"python", "sql"}, "Data Scientist")

	// Matching skills keep the user's own casing.
	assert.Equal(t, []string{"python", "sql"}, result.MatchingSkills)
	assert.NotContains(t, result.MissingSkills, "Python")
	assert.NotContains(t, result.MissingSkills, "SQL")
}

func TestAnalyze_AllSkillsPresent(t *testing.T) {
	agent := NewSkillGapAgent(knowledge.New())
	kb := knowledge.New()

	result := agent.Analyze(kb.RequiredSkills("software engineer"), "software engineer")

	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, "Great! You have all the required skills for a software engineer role.", result.Response)
}

func TestAnalyze_NoMatchingSkills(t *testing.T) {
	agent := NewSkillGapAgent(knowledge.New())

	result := agent.Analyze([]string{"Cooking"}, "data scientist")

	assert.Empty(t, result.MatchingSkills)
	require.Len(t, result.MissingSkills, 8)
	assert.Contains(t, result.Response, "none of the required skills")
}

func TestAnalyze_UnknownRole(t *testing.T) {
	agent := NewSkillGapAgent(knowledge.New())

	// Unknown roles yield an empty requirement list, not an error.
	result := agent.Analyze([]string{"Python"}, "astronaut")

	assert.Equal(t, "astronaut", result.TargetJob)
	assert.Empty(t, result.RequiredSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Empty(t, result.MatchingSkills)
	assert.Equal(t, "Great! You have all the required skills for a astronaut role.", result.Response)
}

func TestAnalyze_Idempotent(t *testing.T) {
	agent := NewSkillGapAgent(knowledge.New())

	first := agent.Analyze([]string{"Python", "SQL"}, "data scientist")
	second := agent.Analyze([]string{"Python", "SQL"}, "data scientist")

	assert.Equal(t, first, second)
}
