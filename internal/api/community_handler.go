package api

import (
	"errors"
	"net/http"

	"vitalfit/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// CommunityHandler holds the feed and media service dependencies.
type CommunityHandler struct {
	feedService  service.FeedService
	mediaService service.MediaService
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(feedService service.FeedService, mediaService service.MediaService) *CommunityHandler {
	return &CommunityHandler{
		feedService:  feedService,
		mediaService: mediaService,
	}
}

// --- DTOs for API (Data Transfer Objects) ---

// CreatePostRequest defines the expected JSON for creating a post.
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
	Image   string `json:"image" binding:"omitempty"` // object key or full URL
}

// RequestUploadRequest defines the expected JSON for a media upload request.
type RequestUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// --- Handler Methods ---

// GetFeed returns the current feed snapshot, optionally filtered by the
// search query parameter. Stored image references are resolved to viewable
// URLs on the way out.
func (h *CommunityHandler) GetFeed(c *gin.Context) {
	snapshot := h.feedService.Feed(c.Query("search"))

	for i := range snapshot.Posts {
		post := &snapshot.Posts[i]
		post.Image = h.mediaService.ResolveImageURL(c.Request.Context(), post.Image)
		post.Author.Avatar = h.mediaService.ResolveImageURL(c.Request.Context(), post.Author.Avatar)
	}

	c.JSON(http.StatusOK, snapshot)
}

// RefreshFeed re-runs the tiered feed load and returns the fresh snapshot.
func (h *CommunityHandler) RefreshFeed(c *gin.Context) {
	h.feedService.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, h.feedService.Feed(c.Query("search")))
}

// CreatePost publishes a post as the authenticated user.
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from session.")
		return
	}

	if err := h.feedService.CreatePost(c.Request.Context(), userID, req.Content, req.Image); err != nil {
		switch {
		case errors.Is(err, service.ErrAuthRequired):
			abortWithError(c, http.StatusUnauthorized, "Please sign in to create posts.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create post. Please try again.")
		}
		return
	}

	c.JSON(http.StatusCreated, h.feedService.Feed(""))
}

// LikePost increments the like counter on a post.
func (h *CommunityHandler) LikePost(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from session.")
		return
	}

	if err := h.feedService.LikePost(c.Request.Context(), userID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			abortWithError(c, http.StatusNotFound, "Post not found.")
		case errors.Is(err, service.ErrAuthRequired):
			abortWithError(c, http.StatusUnauthorized, "Please sign in to like posts.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to like post.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestUpload issues a presigned PUT URL for a post image.
func (h *CommunityHandler) RequestUpload(c *gin.Context) {
	var req RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from session.")
		return
	}

	resp, err := h.mediaService.RequestUploadURL(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedMedia):
			abortWithError(c, http.StatusBadRequest, "Only image uploads are supported.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
