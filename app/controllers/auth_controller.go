package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"blogsite/app/auth"
	"blogsite/app/forms"
	"blogsite/app/models"
	"blogsite/app/repositories"
	"blogsite/app/services"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	renderer
	userService *services.UserService
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService, sessions *auth.Manager, basePath string) *AuthController {
	return &AuthController{
		renderer:    renderer{sessions: sessions, templates: loadTemplates(basePath)},
		userService: userService,
	}
}

// ShowRegister renders the registration form.
func (ac *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	ac.render(w, r, "register", map[string]interface{}{
		"Form":   &forms.RegisterForm{},
		"Errors": forms.Errors{},
	})
}

// Register handles a registration submission.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	form := forms.ParseRegisterForm(r.PostForm)
	if ok, errs := form.Validate(); !ok {
		ac.render(w, r, "register", map[string]interface{}{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	// Pre-check so the duplicate case gets its own message. The repository
	// still enforces uniqueness atomically underneath.
	taken, err := ac.userService.EmailTaken(form.Email)
	if err != nil {
		slog.Error("failed to check email", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if taken {
		ac.sessions.Flash(w, r, "This email already exists in our database. Please login to access your account")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if _, err := ac.userService.Register(form.Name, form.Email, form.Password); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			ac.sessions.Flash(w, r, "This email already exists in our database. Please login to access your account")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		slog.Error("failed to register user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.sessions.Flash(w, r, "Your credentials have been saved. Please login to access your account")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ShowLogin renders the login form.
func (ac *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	ac.render(w, r, "login", map[string]interface{}{
		"Form":   &forms.LoginForm{},
		"Errors": forms.Errors{},
	})
}

// Login handles a login submission.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	form := forms.ParseLoginForm(r.PostForm)
	if ok, errs := form.Validate(); !ok {
		ac.render(w, r, "login", map[string]interface{}{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	user, err := ac.userService.Authenticate(form.Email, form.Password)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		ac.sessions.Flash(w, r, "We did not find this email in our database. Please register to create your account")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	case errors.Is(err, services.ErrWrongPassword):
		ac.sessions.Flash(w, r, "You have entered an incorrect password. Please login with your correct credentials")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case err != nil:
		slog.Error("failed to authenticate", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := ac.sessions.SignIn(w, r, user); err != nil {
		slog.Error("failed to establish session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session and returns to the post list.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request, _ *models.User) {
	if err := ac.sessions.SignOut(w, r); err != nil {
		slog.Error("failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
