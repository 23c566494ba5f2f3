package content

// AllCategories selects every project.
const AllCategories = "All"

var categories = []string{AllCategories, "AI / ML", "Backend", "Tools & Scrapers"}

type Portfolio struct {
	Categories []string
	Projects   []Project
}

func NewPortfolio(projects []Project) Portfolio {
	return Portfolio{Categories: categories, Projects: projects}
}

// Filter returns the projects in category. An empty category or "All"
// returns every project; an unknown category returns none.
func (p Portfolio) Filter(category string) []Project {
	if category == "" || category == AllCategories {
		return p.Projects
	}
	var out []Project
	for _, project := range p.Projects {
		if project.Category == category {
			out = append(out, project)
		}
	}
	return out
}
