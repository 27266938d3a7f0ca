package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/PSINGLA1407/socialmedia/internal/handler"
	"github.com/PSINGLA1407/socialmedia/internal/httputil"
	authmw "github.com/PSINGLA1407/socialmedia/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	FeedHandler    *handler.FeedHandler
	PostHandler    *handler.PostHandler
	ProfileHandler *handler.ProfileHandler
	JWTSecret      string
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no authentication required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", cfg.AuthHandler.SignUp)
		r.Post("/signin", cfg.AuthHandler.SignIn)
		r.Post("/signout", cfg.AuthHandler.SignOut)
	})

	// The feed is readable signed out; a session only matters for actions.
	r.With(authmw.OptionalSession(cfg.JWTSecret)).Get("/feed", cfg.FeedHandler.GetFeed)

	// Protected routes - require an active session
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireSession(cfg.JWTSecret))

		r.Get("/me", cfg.AuthHandler.Me)

		r.Post("/posts", cfg.PostHandler.Create)
		r.Post("/posts/{postID}/like", cfg.FeedHandler.Like)

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", cfg.ProfileHandler.Get)
			r.Put("/", cfg.ProfileHandler.Update)
			r.Post("/avatar", cfg.ProfileHandler.UploadAvatar)
		})
	})

	return r
}
