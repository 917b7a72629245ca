package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"vitalfit/wellness-app/internal/storage"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrUploadURLError   = errors.New("failed to generate upload URL")
	ErrUnsupportedMedia = errors.New("unsupported media content type")
)

// UploadURLResponse carries the presigned URL and the object key the client
// reports back as the post's image reference.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// --- Service Interface ---

type MediaService interface {
	// RequestUploadURL issues a presigned PUT URL for attaching an image to
	// a post. Clients upload directly to the storage provider.
	RequestUploadURL(ctx context.Context, userID, contentType string) (*UploadURLResponse, error)

	// ResolveImageURL turns a stored image reference into something a
	// browser can fetch: full URLs pass through, object keys get a
	// presigned GET URL. Best effort; on failure the reference is returned
	// as-is.
	ResolveImageURL(ctx context.Context, ref string) string
}

// --- Service Implementation ---

type mediaService struct {
	media storage.MediaStorage
}

// NewMediaService creates a new instance of mediaService.
func NewMediaService(media storage.MediaStorage) MediaService {
	return &mediaService{media: media}
}

func (s *mediaService) RequestUploadURL(ctx context.Context, userID, contentType string) (*UploadURLResponse, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	ext, ok := strings.CutPrefix(contentType, "image/")
	if !ok || ext == "" {
		return nil, ErrUnsupportedMedia
	}

	objectKey := path.Join("community", userID, uuid.NewString()+"."+ext)

	uploadURL, err := s.media.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadURLError, err)
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

func (s *mediaService) ResolveImageURL(ctx context.Context, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	url, err := s.media.GeneratePresignedDownloadURL(ctx, ref, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Printf("WARN: Could not presign image reference '%s': %v", ref, err)
		return ref
	}
	return url
}
