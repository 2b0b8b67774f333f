// Package projects loads and serves the portfolio's project showcase:
// a JSON-backed project list with category filtering and a carousel
// model for the landing page.
package projects

// Project is one portfolio entry as stored in the projects data file.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Category     string   `json:"category,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	RepoURL      string   `json:"githubUrl,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}
