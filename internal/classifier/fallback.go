package classifier

import (
	"regexp"
	"strings"

	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
)

// Keyword sets for rule-based intent detection. Matching is plain
// substring containment against the lower-cased query.
var (
	skillGapKeywords = []string{"become", "skills needed", "requirements for", "what skills", "skill gap", "need to learn"}

	jobSearchKeywords = []string{"job", "jobs", "find work", "opportunities", "hiring", "position", "career opportunities"}

	courseKeywords = []string{"learn", "course", "courses", "study", "tutorial", "training", "how to", "education"}
)

// locationPattern captures the words following "in", "at" or "near".
// The capture is deliberately greedy and can swallow trailing unrelated
// text ("near Boston and I like Python" captures everything after
// "near"); changing that would change answers, so it stays.
var locationPattern = regexp.MustCompile(`(?:in|at|near)\s+([a-zA-Z\s,]+)`)

// classifyFallback is the deterministic classification strategy. The
// rule order is fixed: skill-gap phrasing (or a bare role mention) wins
// over everything, job search comes next, and course recommendation is
// the most permissive branch so it is checked last.
func (c *Classifier) classifyFallback(query string) types.Intent {
	queryLower := strings.ToLower(query)

	mentionedJob := c.mentionedJob(queryLower)
	mentionedSkills := c.mentionedSkills(queryLower)
	location := extractLocation(queryLower)

	if containsAny(queryLower, skillGapKeywords) || mentionedJob != "" {
		return types.Intent{
			Type:      types.IntentSkillGap,
			TargetJob: mentionedJob,
			Skills:    mentionedSkills,
		}
	}

	if containsAny(queryLower, jobSearchKeywords) {
		return types.Intent{
			Type:      types.IntentJobSearch,
			TargetJob: mentionedJob,
			Location:  location,
			Skills:    mentionedSkills,
		}
	}

	if containsAny(queryLower, courseKeywords) || len(mentionedSkills) > 0 {
		skills := mentionedSkills
		if len(skills) == 0 && mentionedJob != "" {
			skills = c.kb.RequiredSkills(mentionedJob)
		}
		return types.Intent{
			Type:      types.IntentCourseRecommendation,
			TargetJob: mentionedJob,
			Skills:    skills,
		}
	}

	return types.Intent{
		Type:      types.IntentGeneral,
		TargetJob: mentionedJob,
		Location:  location,
		Skills:    mentionedSkills,
	}
}

// mentionedJob returns the first catalog role appearing in the query.
func (c *Classifier) mentionedJob(queryLower string) string {
	for _, role := range c.kb.Roles() {
		if strings.Contains(queryLower, role) {
			return role
		}
	}
	return ""
}

// mentionedSkills returns every canonical skill appearing in the query,
// in skill union order, with canonical casing.
func (c *Classifier) mentionedSkills(queryLower string) []string {
	var mentioned []string
	for _, skill := range c.kb.SkillUnion() {
		if strings.Contains(queryLower, strings.ToLower(skill)) {
			mentioned = append(mentioned, skill)
		}
	}
	return mentioned
}

// extractLocation returns the first location capture, trimmed.
func extractLocation(queryLower string) string {
	match := locationPattern.FindStringSubmatch(queryLower)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
