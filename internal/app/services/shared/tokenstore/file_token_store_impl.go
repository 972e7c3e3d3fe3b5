package tokenstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
)

type fileTokenStore struct {
	Path string
}

func NewFileTokenStore(path string) contracts.TokenStore {
	return &fileTokenStore{Path: path}
}

func (s *fileTokenStore) Load(ctx context.Context) (*oauth2.Token, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, exceptions.ErrCalendarTokenStore(err)
	}
	return decodeToken(data)
}

// Save replaces the file atomically so a concurrent Load never reads a
// half written token.
func (s *fileTokenStore) Save(ctx context.Context, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".token-*")
	if err != nil {
		return exceptions.ErrCalendarTokenStore(err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return exceptions.ErrCalendarTokenStore(err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return exceptions.ErrCalendarTokenStore(err)
	}
	if err = tmp.Close(); err != nil {
		return exceptions.ErrCalendarTokenStore(err)
	}
	if err = os.Rename(tmp.Name(), s.Path); err != nil {
		return exceptions.ErrCalendarTokenStore(err)
	}
	return nil
}

func decodeToken(data []byte) (*oauth2.Token, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, exceptions.ErrCalendarTokenStore(err)
	}
	return &token, nil
}
