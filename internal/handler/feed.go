package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/PSINGLA1407/socialmedia/internal/httputil"
	"github.com/PSINGLA1407/socialmedia/internal/model"
	"github.com/PSINGLA1407/socialmedia/internal/service"
)

// FeedHandler serves the home feed and the like endpoint.
type FeedHandler struct {
	feedService *service.FeedService
	postService *service.PostService
}

func NewFeedHandler(feedService *service.FeedService, postService *service.PostService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		postService: postService,
	}
}

// GetFeed returns every post, newest first
// GET /feed
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.feedService.GetFeed(r.Context())
	if err != nil {
		httputil.WriteInternalError(w, "Failed to load feed")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, feed)
}

// Like overwrites a post's like counter with the client-computed value
// POST /posts/{postID}/like
func (h *FeedHandler) Like(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid post ID")
		return
	}

	var req model.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Likes must be zero or greater")
		return
	}

	post, err := h.postService.Like(r.Context(), postID, req.Likes)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			httputil.WriteNotFound(w, "Post not found")
			return
		}
		httputil.WriteInternalError(w, "Failed to update likes")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, post)
}
