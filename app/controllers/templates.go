package controllers

import (
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"blogsite/app/auth"
)

// loadTemplates loads and parses all templates
func loadTemplates(basePath string) map[string]*template.Template {
	page := func(content string) *template.Template {
		return template.Must(template.ParseFiles(
			filepath.Join(basePath, "app/views/layout.html"),
			filepath.Join(basePath, content),
		))
	}

	return map[string]*template.Template{
		"index":    page("app/views/posts/index.html"),
		"show":     page("app/views/posts/show.html"),
		"postform": page("app/views/posts/form.html"),
		"register": page("app/views/auth/register.html"),
		"login":    page("app/views/auth/login.html"),
		"about":    page("app/views/pages/about.html"),
		"contact":  page("app/views/pages/contact.html"),
	}
}

// renderer executes page templates with the data every page shares:
// the current user, pending flash messages and the footer year.
type renderer struct {
	sessions  *auth.Manager
	templates map[string]*template.Template
}

func (rr *renderer) render(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}

	user, err := rr.sessions.CurrentUser(r)
	if err != nil {
		slog.Error("failed to load current user", "error", err)
	}
	data["User"] = user
	data["Flashes"] = rr.sessions.Flashes(w, r)
	data["Year"] = time.Now().Format("2006")

	if err := rr.templates[name].ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("template error", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
