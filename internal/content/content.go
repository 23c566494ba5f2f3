// Package content holds the copy and data rendered on the portfolio page.
package content

import "time"

type NavItem struct {
	Name string
	Href string
}

type SkillCategory struct {
	Title  string
	Icon   string
	Skills []string
}

type ResumeEntry struct {
	Role     string
	Company  string
	Location string
	Period   string
	Bullets  []string
}

type Project struct {
	Title       string
	Description string
	Image       string
	Category    string
	Tech        []string
	LiveURL     string
	GitHubURL   string
}

type ContactItem struct {
	Label string
	Value string
	Href  string
}

type SocialLink struct {
	Label string
	Href  string
}

// Links are the deployment-specific URLs. Empty values render as "#".
type Links struct {
	Resume            string
	GitHubProfile     string
	ThyroidPrediction string
	FlightPrediction  string
	RAGEngine         string
}

// Page is everything the page shell renders.
type Page struct {
	Owner      string
	Headline   string
	Intro      string
	Badges     []string
	Nav        []NavItem
	ResumeURL  string
	Skills     []SkillCategory
	Experience []ResumeEntry
	Education  []ResumeEntry
	Portfolio  Portfolio
	Contact    []ContactItem
	Socials    []SocialLink
	Year       int
}

// Build assembles the page, resolving configured links.
func Build(links Links, now time.Time) Page {
	return Page{
		Owner:    "Adil Anwar",
		Headline: "Software Engineer",
		Intro: `I'm an experienced software engineer specializing in building scalable
backend architectures, cloud-native solutions, and AI-driven applications
that solve real-world problems.`,
		Badges:     []string{"Python", "Django", "PostgreSQL"},
		Nav:        navigation,
		ResumeURL:  orHash(links.Resume),
		Skills:     skillCategories,
		Experience: experience,
		Education:  education,
		Portfolio:  NewPortfolio(projects(links)),
		Contact:    contactInfo,
		Socials:    socialLinks,
		Year:       now.Year(),
	}
}

func orHash(url string) string {
	if url == "" {
		return "#"
	}
	return url
}
