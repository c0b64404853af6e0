package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogsite/app/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T, db *badger.DB) *mux.Router {
	cfg := config.Config{
		Addr:      ":0",
		DBPath:    "",
		SecretKey: "routes-test-secret",
	}
	// Templates and static assets live at the repository root
	return Setup(cfg, db, "../..")
}

// browser drives the router like a cookie-keeping user agent, so flows
// spanning several redirects (register, login, comment) can be tested
// end to end.
type browser struct {
	t       *testing.T
	router  *mux.Router
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, router *mux.Router) *browser {
	return &browser{t: t, router: router, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
		} else {
			b.cookies[c.Name] = c
		}
	}
	return w
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do("GET", target, nil)
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	return b.do("POST", target, form)
}

// followRedirect asserts a 303 and fetches its Location.
func (b *browser) followRedirect(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	b.t.Helper()
	require.Equal(b.t, http.StatusSeeOther, w.Code)
	loc, err := w.Result().Location()
	require.NoError(b.t, err)
	return b.get(loc.Path)
}

func (b *browser) register(name, email, password string) *httptest.ResponseRecorder {
	return b.post("/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
}

func (b *browser) login(email, password string) *httptest.ResponseRecorder {
	return b.post("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

// signUpAndLogin registers an account and signs it in.
func (b *browser) signUpAndLogin(name, email, password string) {
	b.t.Helper()
	w := b.register(name, email, password)
	require.Equal(b.t, http.StatusSeeOther, w.Code)
	w = b.login(email, password)
	require.Equal(b.t, http.StatusSeeOther, w.Code)
}

func validPostForm(title string) url.Values {
	return url.Values{
		"title":    {title},
		"subtitle": {"A subtitle"},
		"img_url":  {"https://example.com/cover.jpg"},
		"body":     {"Body content long enough to pass validation"},
	}
}
