// Package about holds the static content of the informational page.
package about

import "todoq/internal/i18n"

// Version is the application version. Set at build time.
var Version = "0.1.0"

// Credit names a contributor or upstream project.
type Credit struct {
	Name string `json:"name"`
	Role string `json:"role"`
	URL  string `json:"url,omitempty"`
}

// Page is the rendered about-page content.
type Page struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	License     string   `json:"license"`
	Credits     []Credit `json:"credits"`
}

// Render resolves the page content for the translator's locale.
func Render(tr *i18n.Translator) Page {
	return Page{
		Name:        "todoq",
		Version:     Version,
		Description: tr.T("about.description"),
		Source:      "https://github.com/marcus-wishes/todoq",
		License:     "MIT",
		Credits: []Credit{
			{Name: "BadgerDB", Role: "embedded storage", URL: "https://github.com/dgraph-io/badger"},
			{Name: "Gin", Role: "HTTP framework", URL: "https://github.com/gin-gonic/gin"},
			{Name: "Google Tasks API", Role: "sync backend", URL: "https://developers.google.com/tasks"},
		},
	}
}
