package tokenstore

import (
	"fmt"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
)

// Backends carries what each token store kind needs. Only the fields of the
// selected kind have to be set.
type Backends struct {
	FilePath string

	RedisRepository contracts.RedisRepository
	RedisKey        string

	Storage    contracts.Storage
	BucketName string
	ObjectName string
}

// New builds the token store named by kind: file, redis or minio.
func New(kind string, backends Backends) (contracts.TokenStore, error) {
	switch kind {
	case constvars.CalendarTokenStoreFile, "":
		return NewFileTokenStore(backends.FilePath), nil
	case constvars.CalendarTokenStoreRedis:
		if backends.RedisRepository == nil {
			return nil, fmt.Errorf("token store %q needs a redis connection", kind)
		}
		return NewRedisTokenStore(backends.RedisRepository, backends.RedisKey), nil
	case constvars.CalendarTokenStoreMinio:
		if backends.Storage == nil {
			return nil, fmt.Errorf("token store %q needs an object storage connection", kind)
		}
		return NewMinioTokenStore(backends.Storage, backends.BucketName, backends.ObjectName), nil
	default:
		return nil, fmt.Errorf("unknown token store %q", kind)
	}
}
