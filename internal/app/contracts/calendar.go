package contracts

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

type CalendarService interface {
	CreateMeetingEvent(ctx context.Context, summary string, startTime, endTime time.Time, attendees []string) (string, error)
}

type CredentialProvider interface {
	Get(ctx context.Context) (*oauth2.Token, error)
	Refresh(ctx context.Context) (*oauth2.Token, error)
}

// TokenStore persists the calendar OAuth token. Load returns a nil token and
// a nil error when nothing has been stored yet.
type TokenStore interface {
	Load(ctx context.Context) (*oauth2.Token, error)
	Save(ctx context.Context, token *oauth2.Token) error
}
