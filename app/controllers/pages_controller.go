package controllers

import (
	"net/http"

	"blogsite/app/auth"
)

// PagesController serves the static about and contact pages.
type PagesController struct {
	renderer
}

// NewPagesController creates a new PagesController
func NewPagesController(sessions *auth.Manager, basePath string) *PagesController {
	return &PagesController{
		renderer: renderer{sessions: sessions, templates: loadTemplates(basePath)},
	}
}

// About renders the about page.
func (pg *PagesController) About(w http.ResponseWriter, r *http.Request) {
	pg.render(w, r, "about", nil)
}

// Contact renders the contact page.
func (pg *PagesController) Contact(w http.ResponseWriter, r *http.Request) {
	pg.render(w, r, "contact", nil)
}

// SubmitContact acknowledges a contact submission. The message itself is
// dropped; there is no delivery backend.
func (pg *PagesController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	pg.sessions.Flash(w, r, "We have received your message :)")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
