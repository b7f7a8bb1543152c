// Package storage abstracts where uploaded avatar images live.
package storage

import (
	"context"
	"mime/multipart"
)

// DefaultImageName is the placeholder avatar assigned at signup.
const DefaultImageName = "no-img.png"

type ImageStorage interface {
	// Upload stores the file under name and returns its public URL.
	Upload(ctx context.Context, file *multipart.FileHeader, name string) (string, error)
	// URL returns the public URL for an object previously stored under name.
	URL(name string) string
}
