package storage

import (
	"context"
	"io"
)

// ImageStore accepts raw image bytes and returns an opaque reference the
// report records carry around (a URL for the Cloudinary store).
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}
