// Package upload handles portrait and jutsu image uploads.
//
// Images go straight to the blob store and only the resulting public URL
// travels back to the client, which then writes it into the record it is
// creating. An upload whose record never materializes leaves an orphan
// object behind; there is no garbage collection.
package upload

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shinobidex/fichas-api/internal/platform/apperr"
	"github.com/shinobidex/fichas-api/internal/platform/blob"
)

// allowedExtensions are the accepted image file extensions, without dot.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

type Service struct {
	store  blob.Store
	logger *slog.Logger
}

func NewService(store blob.Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Result is the response payload for a completed upload.
type Result struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Upload stores one image and returns its public URL.
//
// The object key is derived from the caller token and the upload instant,
// so concurrent uploads from one caller cannot collide within a
// millisecond tick in practice.
func (service *Service) Upload(context context.Context, prefix, caller, filename, contentType string, body io.Reader) (*Result, error) {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedExtensions[extension] {
		return nil, apperr.ValidationError("Unsupported image type: " + extension)
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperr.ValidationError("File must be an image")
	}

	key := blob.ObjectKey(prefix, caller, extension, time.Now())
	if err := service.store.Upload(context, key, contentType, body); err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("image_uploaded",
		slog.String("key", key),
		slog.String("caller", caller),
	)

	return &Result{
		URL: service.store.PublicURL(key),
		Key: key,
	}, nil
}
