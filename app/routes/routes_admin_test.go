package routes

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"blogsite/app/models"
	"blogsite/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonAdminCannotManagePosts(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)

	admin := newBrowser(t, router)
	admin.signUpAndLogin("Site Admin", "admin@example.com", "a safe password")
	require.Equal(t, http.StatusSeeOther, admin.post("/new-post", validPostForm("Protected Post")).Code)

	other := newBrowser(t, router)
	other.signUpAndLogin("Second User", "second@example.com", "a safe password")

	assert.Equal(t, http.StatusForbidden, other.get("/new-post").Code)
	assert.Equal(t, http.StatusForbidden, other.post("/new-post", validPostForm("Sneaky Post")).Code)
	assert.Equal(t, http.StatusForbidden, other.get("/edit-post/1").Code)
	assert.Equal(t, http.StatusForbidden, other.post("/edit-post/1", validPostForm("Defaced Post")).Code)
	assert.Equal(t, http.StatusForbidden, other.get("/delete/1").Code)

	// Nothing was created, edited or deleted
	posts := repositories.NewBadgerPostRepository(db)
	all, err := posts.List(10, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Protected Post", all[0].Title)
}

func TestAnonymousPostManagementRedirectsToLogin(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)
	b := newBrowser(t, router)

	w := b.get("/new-post")
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := w.Result().Location()
	require.NoError(t, err)
	assert.Equal(t, "/login", loc.Path)

	login := b.get("/login")
	assert.Contains(t, login.Body.String(), "Please login to access this page")
}

func TestAdminCreatesPost(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)

	admin := newBrowser(t, router)
	admin.signUpAndLogin("Site Admin", "admin@example.com", "a safe password")

	w := admin.post("/new-post", validPostForm("First Post"))
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := w.Result().Location()
	require.NoError(t, err)
	assert.Equal(t, "/", loc.Path)

	posts := repositories.NewBadgerPostRepository(db)
	post, err := posts.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "First Post", post.Title)
	assert.Equal(t, "Site Admin", post.Author)
	assert.Equal(t, models.AdminUserID, post.UserID)
	assert.Equal(t, time.Now().Format(models.DateFormat), post.Date)

	home := admin.get("/")
	assert.Contains(t, home.Body.String(), "First Post")
}

func TestDuplicateTitleRerendersForm(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)

	admin := newBrowser(t, router)
	admin.signUpAndLogin("Site Admin", "admin@example.com", "a safe password")
	require.Equal(t, http.StatusSeeOther, admin.post("/new-post", validPostForm("Only Once")).Code)

	w := admin.post("/new-post", validPostForm("Only Once"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	posts := repositories.NewBadgerPostRepository(db)
	all, err := posts.List(10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAdminEditsPost(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)

	admin := newBrowser(t, router)
	admin.signUpAndLogin("Site Admin", "admin@example.com", "a safe password")
	require.Equal(t, http.StatusSeeOther, admin.post("/new-post", validPostForm("Draft Title")).Code)

	reader := newBrowser(t, router)
	reader.signUpAndLogin("Reader", "reader@example.com", "a safe password")
	require.Equal(t, http.StatusSeeOther, reader.post("/post/1", url.Values{"comment": {"keep me around"}}).Code)

	posts := repositories.NewBadgerPostRepository(db)
	before, err := posts.GetByID(1)
	require.NoError(t, err)

	form := validPostForm("Final Title")
	form.Set("body", "A thoroughly revised body with enough words")
	w := admin.post("/edit-post/1", form)
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := w.Result().Location()
	require.NoError(t, err)
	assert.Equal(t, "/post/1", loc.Path)

	after, err := posts.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 1, after.ID)
	assert.Equal(t, "Final Title", after.Title)
	assert.Equal(t, "A thoroughly revised body with enough words", after.Body)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.Equal(t, before.Date, after.Date)

	// Comments survive an edit
	comments := repositories.NewBadgerCommentRepository(db)
	rows, err := comments.ListByPost(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "keep me around", rows[0].Body)
}

func TestAdminDeletesPostAndItsComments(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)

	admin := newBrowser(t, router)
	admin.signUpAndLogin("Site Admin", "admin@example.com", "a safe password")
	require.Equal(t, http.StatusSeeOther, admin.post("/new-post", validPostForm("Doomed Post")).Code)
	require.Equal(t, http.StatusSeeOther, admin.post("/new-post", validPostForm("Surviving Post")).Code)

	reader := newBrowser(t, router)
	reader.signUpAndLogin("Reader", "reader@example.com", "a safe password")
	require.Equal(t, http.StatusSeeOther, reader.post("/post/1", url.Values{"comment": {"doomed comment"}}).Code)
	require.Equal(t, http.StatusSeeOther, reader.post("/post/2", url.Values{"comment": {"surviving comment"}}).Code)

	w := admin.get("/delete/1")
	require.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := w.Result().Location()
	require.NoError(t, err)
	assert.Equal(t, "/", loc.Path)

	posts := repositories.NewBadgerPostRepository(db)
	_, err = posts.GetByID(1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	comments := repositories.NewBadgerCommentRepository(db)
	gone, err := comments.ListByPost(1)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := comments.ListByPost(2)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Equal(t, "surviving comment", kept[0].Body)
}

func TestMissingPostReturns404(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)
	b := newBrowser(t, router)

	assert.Equal(t, http.StatusNotFound, b.get("/post/99").Code)
	assert.Equal(t, http.StatusNotFound, b.get("/post/banana").Code)
}

func TestStaticPages(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)
	b := newBrowser(t, router)

	about := b.get("/about")
	assert.Equal(t, http.StatusOK, about.Code)
	assert.Contains(t, about.Body.String(), "About")

	contact := b.get("/contact")
	assert.Equal(t, http.StatusOK, contact.Code)
	assert.Contains(t, contact.Body.String(), "Contact")

	w := b.post("/contact", url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"message": {"hello there"},
	})
	home := b.followRedirect(w)
	assert.Contains(t, home.Body.String(), "We have received your message")
}

func TestStaticAssets(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db)
	b := newBrowser(t, router)

	w := b.get("/static/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "body")
}
