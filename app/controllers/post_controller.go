package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"blogsite/app/auth"
	"blogsite/app/forms"
	"blogsite/app/models"
	"blogsite/app/repositories"
	"blogsite/app/services"

	"github.com/gorilla/mux"
)

// PostController handles post pages and comment submissions.
type PostController struct {
	renderer
	postService    *services.PostService
	commentService *services.CommentService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, commentService *services.CommentService, sessions *auth.Manager, basePath string) *PostController {
	return &PostController{
		renderer:       renderer{sessions: sessions, templates: loadTemplates(basePath)},
		postService:    postService,
		commentService: commentService,
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil && id > 0
}

// Index renders all posts.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	posts, err := pc.postService.ListPosts(page, 10)
	if err != nil {
		slog.Error("failed to list posts", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pc.render(w, r, "index", map[string]interface{}{
		"Posts": posts,
		"Page":  page,
	})
}

// Show renders a single post with its comments. A missing id is an
// explicit 404, never a nil dereference.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to load post", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pc.render(w, r, "show", map[string]interface{}{
		"Post":   post,
		"Form":   &forms.CommentForm{},
		"Errors": forms.Errors{},
	})
}

// Comment handles a comment submission on the post page. Anonymous
// visitors are bounced to the login page and nothing is stored.
func (pc *PostController) Comment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	form := forms.ParseCommentForm(r.PostForm)
	if ok, errs := form.Validate(); !ok {
		post, err := pc.postService.GetPost(id)
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			slog.Error("failed to load post", "id", id, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		pc.render(w, r, "show", map[string]interface{}{
			"Post":   post,
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	user, err := pc.sessions.CurrentUser(r)
	if err != nil {
		slog.Error("failed to load current user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		pc.sessions.Flash(w, r, "Please login to comment on our posts")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if _, err := pc.commentService.CreateComment(id, user, form.Body); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("failed to create comment", "post", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/post/"+strconv.Itoa(id), http.StatusSeeOther)
}

// New renders the empty post form.
func (pc *PostController) New(w http.ResponseWriter, r *http.Request, _ *models.User) {
	pc.render(w, r, "postform", map[string]interface{}{
		"Form":   &forms.PostForm{},
		"Errors": forms.Errors{},
	})
}

// Create publishes a new post authored by the admin.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request, user *models.User) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	form := forms.ParsePostForm(r.PostForm)
	if ok, errs := form.Validate(); !ok {
		pc.render(w, r, "postform", map[string]interface{}{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	post := &models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		ImageURL: form.ImageURL,
		Body:     form.Body,
	}
	if err := pc.postService.CreatePost(post, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			pc.render(w, r, "postform", map[string]interface{}{
				"Form":   form,
				"Errors": forms.Errors{"title": "A post with this title already exists"},
			})
			return
		}
		slog.Error("failed to create post", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Edit renders the post form pre-filled from the existing post.
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request, _ *models.User) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to load post", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pc.render(w, r, "postform", map[string]interface{}{
		"Form": &forms.PostForm{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			ImageURL: post.ImageURL,
			Body:     post.Body,
		},
		"Errors":  forms.Errors{},
		"Editing": post.ID,
	})
}

// Update mutates an existing post in place.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request, user *models.User) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	form := forms.ParsePostForm(r.PostForm)
	if ok, errs := form.Validate(); !ok {
		pc.render(w, r, "postform", map[string]interface{}{
			"Form":    form,
			"Errors":  errs,
			"Editing": id,
		})
		return
	}

	fields := &models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		ImageURL: form.ImageURL,
		Body:     form.Body,
	}
	post, err := pc.postService.UpdatePost(id, fields, user)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if errors.Is(err, repositories.ErrDuplicateTitle) {
		pc.render(w, r, "postform", map[string]interface{}{
			"Form":    form,
			"Errors":  forms.Errors{"title": "A post with this title already exists"},
			"Editing": id,
		})
		return
	}
	if err != nil {
		slog.Error("failed to update post", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/post/"+strconv.Itoa(post.ID), http.StatusSeeOther)
}

// Delete removes a post and its comments.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request, _ *models.User) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	err := pc.postService.DeletePost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to delete post", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
