package interfaces

import (
	"context"
	"io"
)

// IFileStorage abstracts the object store that keeps generated document bytes.
type IFileStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Download(ctx context.Context, objectName string) ([]byte, error)
	Delete(ctx context.Context, objectName string) error
}
