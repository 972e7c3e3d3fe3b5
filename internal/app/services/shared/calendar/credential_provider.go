package calendar

import (
	"context"
	"errors"
	"os"
	"sync"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type credentialProvider struct {
	Config *oauth2.Config
	Store  contracts.TokenStore
	Log    *zap.Logger

	// refreshMu serializes loading and refreshing; mu guards token.
	refreshMu sync.Mutex
	mu        sync.RWMutex
	token     *oauth2.Token
	loaded    bool
}

func NewCredentialProvider(oauthConfig *oauth2.Config, store contracts.TokenStore, logger *zap.Logger) contracts.CredentialProvider {
	return &credentialProvider{
		Config: oauthConfig,
		Store:  store,
		Log:    logger,
	}
}

// NewOAuthConfigFromFile reads a Google client secret JSON file.
func NewOAuthConfigFromFile(credentialsFile string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, err
	}
	return google.ConfigFromJSON(data, constvars.CalendarEventsScope)
}

func (p *credentialProvider) Get(ctx context.Context) (*oauth2.Token, error) {
	p.mu.RLock()
	token, loaded := p.token, p.loaded
	p.mu.RUnlock()

	if loaded && token != nil && token.Valid() {
		return token, nil
	}
	return p.obtain(ctx, false)
}

func (p *credentialProvider) Refresh(ctx context.Context) (*oauth2.Token, error) {
	return p.obtain(ctx, true)
}

func (p *credentialProvider) obtain(ctx context.Context, force bool) (*oauth2.Token, error) {
	p.refreshMu.Lock()
	defer p.refreshMu.Unlock()

	// A missing or unrefreshable token is re-read from the store, so a token
	// seeded by calendar-auth is picked up without a restart.
	if !p.isLoaded() || !refreshable(p.currentToken()) {
		stored, err := p.Store.Load(ctx)
		if err != nil {
			return nil, err
		}
		p.setToken(stored)
		p.Log.Info("credentialProvider loaded calendar token from store",
			zap.Bool("found", stored != nil),
		)
	}

	current := p.currentToken()
	if current == nil {
		return nil, exceptions.ErrCalendarAuthorizationRequired(nil)
	}
	// Another caller may have refreshed while this one waited on the lock.
	if !force && current.Valid() {
		return current, nil
	}
	if current.RefreshToken == "" {
		return nil, exceptions.ErrCalendarAuthorizationRequired(nil)
	}

	stale := &oauth2.Token{RefreshToken: current.RefreshToken}
	refreshed, err := p.Config.TokenSource(ctx, stale).Token()
	if err != nil {
		p.Log.Error("credentialProvider failed to refresh calendar token", zap.Error(err))
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "invalid_grant" {
			p.invalidate()
			return nil, exceptions.ErrCalendarAuthorizationRequired(err)
		}
		return nil, exceptions.ErrCalendarTokenRefresh(err)
	}

	p.setToken(refreshed)
	p.Log.Info("credentialProvider refreshed calendar token",
		zap.Time(constvars.LoggingTokenExpiryKey, refreshed.Expiry),
	)

	if err := p.Store.Save(ctx, refreshed); err != nil {
		p.Log.Warn("credentialProvider failed to persist refreshed calendar token", zap.Error(err))
	}
	return refreshed, nil
}

func refreshable(token *oauth2.Token) bool {
	return token != nil && (token.Valid() || token.RefreshToken != "")
}

func (p *credentialProvider) invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = nil
	p.loaded = false
}

func (p *credentialProvider) isLoaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

func (p *credentialProvider) currentToken() *oauth2.Token {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}

func (p *credentialProvider) setToken(token *oauth2.Token) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
	p.loaded = true
}
