package routes

import (
	"net/http"
	"path/filepath"

	"blogsite/app/auth"
	"blogsite/app/config"
	"blogsite/app/controllers"
	"blogsite/app/middleware"
	"blogsite/app/repositories"
	"blogsite/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// Setup wires repositories, services and controllers onto a router.
// basePath locates templates and static assets; it is "" in production
// and points at the repository root in tests.
func Setup(cfg config.Config, db *badger.DB, basePath string) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	sessions := auth.NewManager(cfg.SecretKey, userRepo)

	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	authController := controllers.NewAuthController(userService, sessions, basePath)
	postController := controllers.NewPostController(postService, commentService, sessions, basePath)
	pagesController := controllers.NewPagesController(sessions, basePath)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Serve static files
	staticDir := filepath.Join(basePath, "static")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	router.HandleFunc("/", postController.Index).Methods("GET")

	router.HandleFunc("/register", authController.ShowRegister).Methods("GET")
	router.HandleFunc("/register", authController.Register).Methods("POST")
	router.HandleFunc("/login", authController.ShowLogin).Methods("GET")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", sessions.RequireUser(authController.Logout)).Methods("GET")

	// Non-integer id segments fall through to the router's 404
	router.HandleFunc("/post/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", postController.Comment).Methods("POST")

	router.HandleFunc("/about", pagesController.About).Methods("GET")
	router.HandleFunc("/contact", pagesController.Contact).Methods("GET")
	router.HandleFunc("/contact", pagesController.SubmitContact).Methods("POST")

	// Post management is restricted to the privileged identity
	router.HandleFunc("/new-post", sessions.RequireAdmin(postController.New)).Methods("GET")
	router.HandleFunc("/new-post", sessions.RequireAdmin(postController.Create)).Methods("POST")
	router.HandleFunc("/edit-post/{id:[0-9]+}", sessions.RequireAdmin(postController.Edit)).Methods("GET")
	router.HandleFunc("/edit-post/{id:[0-9]+}", sessions.RequireAdmin(postController.Update)).Methods("POST")
	router.HandleFunc("/delete/{id:[0-9]+}", sessions.RequireAdmin(postController.Delete)).Methods("GET")

	return router
}
