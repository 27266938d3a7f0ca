package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/PSINGLA1407/socialmedia/internal/httputil"
	"github.com/PSINGLA1407/socialmedia/internal/model"
	"github.com/PSINGLA1407/socialmedia/internal/service"
	"github.com/PSINGLA1407/socialmedia/internal/transport/http/middleware"
)

// PostHandler handles post creation.
type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create handles multipart post creation with an optional image
// POST /posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return
	}

	maxFormSize := int64(model.MaxPostImageSize) + 1024*1024 // allow form overhead
	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			httputil.WriteBadRequest(w, "Content-Type must be multipart/form-data")
			return
		}
		if strings.Contains(err.Error(), "request body too large") {
			httputil.WriteBadRequestWithCode(w, model.CodeFileTooLarge, "Image exceeds 5MB limit")
			return
		}
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}

	caption := r.FormValue("caption")

	var image *service.ImageUpload
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			httputil.WriteBadRequest(w, "Invalid image upload")
			return
		}
		contentType := header.Header.Get("Content-Type")
		image = &service.ImageUpload{
			Filename:    header.Filename,
			Data:        data,
			ContentType: contentType,
		}
	} else if err != http.ErrMissingFile {
		httputil.WriteBadRequest(w, "Invalid image upload")
		return
	}

	post, err := h.postService.Create(r.Context(), userID, caption, image)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyCaption):
			httputil.WriteBadRequest(w, "Caption is required")
		case errors.Is(err, model.ErrImageTooLarge):
			httputil.WriteBadRequestWithCode(w, model.CodeFileTooLarge, "Image exceeds 5MB limit")
		case errors.Is(err, model.ErrInvalidImageType):
			httputil.WriteBadRequestWithCode(w, model.CodeInvalidImageType, "Unsupported image type. Allowed: jpeg, png, gif, webp")
		default:
			httputil.WriteInternalError(w, "Failed to create post")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, post)
}
