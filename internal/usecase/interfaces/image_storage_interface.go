package interfaces

import (
	"context"
	"io"
)

//go:generate mockgen -source=image_storage_interface.go -destination=mocks/image_storage_interface.go -package=mock_interfaces

// IImageStorage abstracts object storage for campaign images (S3).
type IImageStorage interface {
	// Upload stores the image under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (url string, err error)
}
