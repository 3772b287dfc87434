package knowledge

import "github.com/jsexpertdev/ostad-ai-agent/internal/types"

// roleEntry pairs a role name with its required skills. A slice (not a
// map) preserves the catalog's declaration order, which fallback
// classification and skill union construction depend on.
type roleEntry struct {
	role   string
	skills []string
}

// defaultRoles is the role → required skills catalog. Role names are
// lower-cased; skill names are canonical.
var defaultRoles = []roleEntry{
	{"data scientist", []string{"Python", "Machine Learning", "Statistics", "SQL", "Pandas", "NumPy", "Scikit-learn", "Data Visualization"}},
	{"web developer", []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "Git", "Responsive Design"}},
	{"data analyst", []string{"SQL", "Excel", "Python", "Tableau", "Statistics", "Data Visualization"}},
	{"software engineer", []string{"Programming", "Data Structures", "Algorithms", "Git", "Testing", "Problem Solving"}},
	{"product manager", []string{"Project Management", "Market Research", "Data Analysis", "Communication", "Agile", "Strategic Planning"}},
	{"ui/ux designer", []string{"Design Principles", "Figma", "Adobe Creative Suite", "Prototyping", "User Research", "Wireframing"}},
}

// defaultJobs is the static job listing catalog.
var defaultJobs = []types.Job{
	{
		Title:          "Junior Data Scientist",
		Company:        "TechCorp Inc.",
		Location:       "New York, NY",
		RequiredSkills: []string{"Python", "Machine Learning", "Statistics", "SQL"},
		SalaryRange:    "$75,000 - $90,000",
	},
	{
		Title:          "Frontend Developer",
		Company:        "WebSolutions Ltd.",
		Location:       "San Francisco, CA",
		RequiredSkills: []string{"JavaScript", "React", "CSS", "HTML"},
		SalaryRange:    "$80,000 - $100,000",
	},
	{
		Title:          "Data Analyst",
		Company:        "Analytics Pro",
		Location:       "Chicago, IL",
		RequiredSkills: []string{"SQL", "Python", "Tableau", "Excel"},
		SalaryRange:    "$60,000 - $75,000",
	},
	{
		Title:          "Full Stack Developer",
		Company:        "StartupXYZ",
		Location:       "Austin, TX",
		RequiredSkills: []string{"JavaScript", "React", "Node.js", "MongoDB"},
		SalaryRange:    "$85,000 - $110,000",
	},
	{
		Title:          "UX Designer",
		Company:        "Design Studio",
		Location:       "Los Angeles, CA",
		RequiredSkills: []string{"Figma", "User Research", "Prototyping", "Design Principles"},
		SalaryRange:    "$70,000 - $90,000",
	},
}

// defaultCourses maps canonical skill names to recommended courses.
var defaultCourses = map[string][]types.Course{
	"Python": {
		{Title: "Python for Data Science", Platform: "Coursera", Link: "https://coursera.org/python-data-science"},
		{Title: "Complete Python Bootcamp", Platform: "Udemy", Link: "https://udemy.com/python-bootcamp"},
	},
	"Machine Learning": {
		{Title: "Machine Learning Course", Platform: "Coursera", Link: "https://coursera.org/machine-learning"},
		{Title: "Hands-On Machine Learning", Platform: "Udemy", Link: "https://udemy.com/machine-learning"},
	},
	"SQL": {
		{Title: "SQL for Data Science", Platform: "Coursera", Link: "https://coursera.org/sql-data-science"},
		{Title: "The Complete SQL Bootcamp", Platform: "Udemy", Link: "https://udemy.com/sql-bootcamp"},
	},
	"React": {
		{Title: "React - The Complete Guide", Platform: "Udemy", Link: "https://udemy.com/react-complete"},
		{Title: "React Specialization", Platform: "Coursera", Link: "https://coursera.org/react-specialization"},
	},
	"JavaScript": {
		{Title: "JavaScript: The Complete Guide", Platform: "Udemy", Link: "https://udemy.com/javascript-complete"},
		{Title: "JavaScript Algorithms and Data Structures", Platform: "freeCodeCamp", Link: "https://freecodecamp.org/javascript"},
	},
	"Statistics": {
		{Title: "Statistics for Data Science", Platform: "Coursera", Link: "https://coursera.org/statistics"},
		{Title: "Business Statistics", Platform: "edX", Link: "https://edx.org/statistics"},
	},
	"Figma": {
		{Title: "Figma UI/UX Design Essentials", Platform: "Udemy", Link: "https://udemy.com/figma-essentials"},
		{Title: "Design Systems with Figma", Platform: "Skillshare", Link: "https://skillshare.com/figma"},
	},
}
