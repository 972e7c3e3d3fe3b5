package tokenstore

import (
	"context"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
)

type minioTokenStore struct {
	Storage    contracts.Storage
	BucketName string
	ObjectName string
}

func NewMinioTokenStore(storage contracts.Storage, bucketName, objectName string) contracts.TokenStore {
	return &minioTokenStore{
		Storage:    storage,
		BucketName: bucketName,
		ObjectName: objectName,
	}
}

func (s *minioTokenStore) Load(ctx context.Context) (*oauth2.Token, error) {
	data, err := s.Storage.GetObject(ctx, s.BucketName, s.ObjectName)
	if err != nil {
		return nil, err
	}
	return decodeToken(data)
}

func (s *minioTokenStore) Save(ctx context.Context, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.Storage.PutObject(ctx, s.BucketName, s.ObjectName, data, constvars.MIMEApplicationJSON)
}
