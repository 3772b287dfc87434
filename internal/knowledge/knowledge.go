// Package knowledge provides the static career knowledge base: role
// requirements, the job catalog, and course recommendations. A Base is
// built once at startup and is read-only afterwards, so it is safe to
// share across concurrent requests without locking.
package knowledge

import (
	"sort"
	"strings"

	"github.com/jsexpertdev/ostad-ai-agent/internal/types"
)

// Base is the immutable knowledge base. All lookup methods return
// copies so callers cannot mutate the underlying tables.
type Base struct {
	roles      []string            // role names in catalog order
	roleSkills map[string][]string // lower-cased role name -> required skills
	jobs       []types.Job
	courses    map[string][]types.Course
	skillUnion []string // de-duplicated union of role skills, first-seen order
	allSkills  []string // same union, sorted
}

// New builds the default knowledge base from the static catalogs.
func New() *Base {
	b := &Base{
		roleSkills: make(map[string][]string, len(defaultRoles)),
		jobs:       defaultJobs,
		courses:    defaultCourses,
	}

	seen := make(map[string]bool)
	for _, entry := range defaultRoles {
		b.roles = append(b.roles, entry.role)
		b.roleSkills[strings.ToLower(entry.role)] = entry.skills
		for _, skill := range entry.skills {
			if !seen[skill] {
				seen[skill] = true
				b.skillUnion = append(b.skillUnion, skill)
			}
		}
	}

	b.allSkills = append([]string(nil), b.skillUnion...)
	sort.Strings(b.allSkills)

	return b
}

// Roles returns the known role names in catalog order.
func (b *Base) Roles() []string {
	return append([]string(nil), b.roles...)
}

// RequiredSkills returns the required skills for a role. The lookup is
// case-insensitive; an unknown role yields nil, not an error.
func (b *Base) RequiredSkills(role string) []string {
	skills, ok := b.roleSkills[strings.ToLower(role)]
	if !ok {
		return nil
	}
	return append([]string(nil), skills...)
}

// SkillUnion returns every canonical skill across all roles,
// de-duplicated, in the order skills first appear in the role catalog.
func (b *Base) SkillUnion() []string {
	return append([]string(nil), b.skillUnion...)
}

// AllSkills returns the sorted, de-duplicated skill union.
func (b *Base) AllSkills() []string {
	return append([]string(nil), b.allSkills...)
}

// Jobs returns the full job catalog in its original order.
func (b *Base) Jobs() []types.Job {
	return append([]types.Job(nil), b.jobs...)
}

// Courses returns the courses for a skill. The lookup is exact against
// the canonical skill name; an unknown skill yields nil.
func (b *Base) Courses(skill string) []types.Course {
	courses, ok := b.courses[skill]
	if !ok {
		return nil
	}
	return append([]types.Course(nil), courses...)
}
