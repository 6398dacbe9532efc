// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

/*
Package blob provides object storage for character and jutsu images.

The concrete backend is any S3-compatible service (Cloudflare R2,
DigitalOcean Spaces, MinIO). Uploaded objects are public-read; the API
returns the public URL and the record stores only that URL.

# Orphans

Uploads are not garbage collected. A client that uploads an image and then
abandons the create form leaves an orphaned object behind. This is a known,
accepted property of the system — keys are cheap and collisions impossible
by construction.
*/
package blob

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shinobidex/fichas-api/pkg/sanitize"
)

// Store is the object-storage contract consumed by the upload handlers.
type Store interface {
	// Upload writes the object under key with the given content type.
	Upload(context context.Context, key string, contentType string, body io.Reader) error

	// PublicURL returns the publicly reachable URL for key. It performs no
	// network call and does not check that the object exists.
	PublicURL(key string) string
}

// ObjectKey builds a collision-free storage key for an uploaded image.
//
// # Key Shape
//
//	{owner}_{unix-ms}.{ext}           (character images)
//	jutsu_{owner}_{unix-ms}.{ext}     (jutsu images, prefix = "jutsu")
//
// The owner token is sanitized (dots become underscores) and the timestamp
// makes repeated uploads by the same owner unique. An empty prefix yields
// the character shape.
func ObjectKey(prefix, ownerToken, ext string, now time.Time) string {
	ext = strings.TrimPrefix(ext, ".")
	key := fmt.Sprintf("%s_%d.%s", sanitize.Token(ownerToken), now.UnixMilli(), ext)

	if prefix != "" {
		key = prefix + "_" + key
	}
	return key
}
