package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/PSINGLA1407/socialmedia/internal/config"
	"github.com/PSINGLA1407/socialmedia/internal/httputil"
	"github.com/PSINGLA1407/socialmedia/internal/model"
	"github.com/PSINGLA1407/socialmedia/internal/service"
	"github.com/PSINGLA1407/socialmedia/internal/transport/http/middleware"
)

var validate = validator.New()

// AuthHandler groups auth-related HTTP endpoints and their dependencies.
type AuthHandler struct {
	authService *service.AuthService
	config      *config.Config
}

// NewAuthHandler wires dependencies for authentication endpoints.
func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      cfg,
	}
}

// SignUp handles registration
// POST /auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Email and password are required")
		return
	}

	session, err := h.authService.SignUp(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmailExists) {
			httputil.WriteConflict(w, "Email already registered")
			return
		}
		httputil.WriteInternalError(w, "Failed to create account")
		return
	}

	session.Next = nextParam(r)
	h.setSessionCookie(w, session.Token)
	httputil.WriteJSON(w, http.StatusCreated, session)
}

// SignIn handles login
// POST /auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req model.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Email and password are required")
		return
	}

	session, err := h.authService.SignIn(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteUnauthorized(w, "Invalid email or password")
			return
		}
		httputil.WriteInternalError(w, "Failed to sign in")
		return
	}

	session.Next = nextParam(r)
	h.setSessionCookie(w, session.Token)
	httputil.WriteJSON(w, http.StatusOK, session)
}

// SignOut clears the session cookie. Sessions are stateless, so there is
// nothing to revoke server-side.
// POST /auth/signout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Signed out successfully",
	})
}

// Me returns the currently authenticated user
// GET /me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			httputil.WriteNotFound(w, "User not found")
			return
		}
		httputil.WriteInternalError(w, "Failed to get user")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.config.SessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// nextParam echoes the preserved destination from the auth guard redirect.
// Only relative paths are allowed back, so the redirect cannot leave the
// site.
func nextParam(r *http.Request) string {
	next := r.URL.Query().Get("next")
	if next == "" || next[0] != '/' {
		return ""
	}
	return next
}
