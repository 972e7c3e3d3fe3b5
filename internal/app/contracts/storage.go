package contracts

import "context"

type Storage interface {
	PutObject(ctx context.Context, bucketName, objectName string, data []byte, contentType string) error
	// GetObject returns nil data and a nil error when the object does not exist.
	GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error)
}
