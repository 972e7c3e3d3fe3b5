package calendar

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	gcalendar "google.golang.org/api/calendar/v3"
)

type staticCredentials struct {
	token *oauth2.Token
	err   error
}

func (c *staticCredentials) Get(ctx context.Context) (*oauth2.Token, error) {
	return c.token, c.err
}

func (c *staticCredentials) Refresh(ctx context.Context) (*oauth2.Token, error) {
	return c.token, c.err
}

func validCredentials() *staticCredentials {
	return &staticCredentials{token: &oauth2.Token{
		AccessToken: "access-token",
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Hour),
	}}
}

type calendarStub struct {
	hits     int32
	received *gcalendar.Event
	query    string
	auth     string
}

func newCalendarServer(t *testing.T, stub *calendarStub, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&stub.hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)

		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var event gcalendar.Event
		assert.NoError(t, json.Unmarshal(data, &event))
		stub.received = &event
		stub.query = r.URL.Query().Get("conferenceDataVersion")
		stub.auth = r.Header.Get(constvars.HeaderAuthorization)

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestCalendarService(t *testing.T, credentials *staticCredentials, baseURL string) *googleCalendarService {
	t.Helper()
	location, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return NewGoogleCalendarService(credentials, "primary", location, baseURL, zap.NewNop()).(*googleCalendarService)
}

func TestCreateMeetingEvent_Success(t *testing.T) {
	stub := &calendarStub{}
	srv := newCalendarServer(t, stub, http.StatusOK, `{"id":"evt-1","hangoutLink":"https://meet.google.com/abc-defg-hij"}`)
	service := newTestCalendarService(t, validCredentials(), srv.URL+"/")

	start := time.Date(2025, 3, 1, 4, 30, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	link, err := service.CreateMeetingEvent(context.Background(), "Consultation: Asha with Dr. Rao", start, end, []string{"asha@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", link)

	require.NotNil(t, stub.received)
	assert.Equal(t, "1", stub.query)
	assert.Equal(t, "Bearer access-token", stub.auth)
	assert.Equal(t, "Consultation: Asha with Dr. Rao", stub.received.Summary)
	assert.Equal(t, "2025-03-01T10:00:00+05:30", stub.received.Start.DateTime)
	assert.Equal(t, "2025-03-01T11:00:00+05:30", stub.received.End.DateTime)
	assert.Equal(t, "Asia/Kolkata", stub.received.Start.TimeZone)
	require.Len(t, stub.received.Attendees, 1)
	assert.Equal(t, "asha@example.com", stub.received.Attendees[0].Email)
	require.NotNil(t, stub.received.ConferenceData)
	require.NotNil(t, stub.received.ConferenceData.CreateRequest)
	assert.NotEmpty(t, stub.received.ConferenceData.CreateRequest.RequestId)
	assert.Equal(t, constvars.CalendarConferenceSolutionHangoutsMeet, stub.received.ConferenceData.CreateRequest.ConferenceSolutionKey.Type)
}

func TestCreateMeetingEvent_FallsBackToVideoEntryPoint(t *testing.T) {
	stub := &calendarStub{}
	body := `{"id":"evt-2","conferenceData":{"entryPoints":[` +
		`{"entryPointType":"phone","uri":"tel:+1-555-0100"},` +
		`{"entryPointType":"video","uri":"https://meet.google.com/xyz-uvw-rst"}]}}`
	srv := newCalendarServer(t, stub, http.StatusOK, body)
	service := newTestCalendarService(t, validCredentials(), srv.URL+"/")

	start := time.Now()
	link, err := service.CreateMeetingEvent(context.Background(), "Consultation", start, start.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://meet.google.com/xyz-uvw-rst", link)
}

func TestCreateMeetingEvent_RemoteFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{
			name:       "remote error status",
			status:     http.StatusForbidden,
			body:       `{"error":{"code":403,"message":"Calendar usage limits exceeded."}}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "response without link",
			status:     http.StatusOK,
			body:       `{"id":"evt-3"}`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "response with non url link",
			status:     http.StatusOK,
			body:       `{"id":"evt-4","hangoutLink":"meet-abc"}`,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &calendarStub{}
			srv := newCalendarServer(t, stub, tt.status, tt.body)
			service := newTestCalendarService(t, validCredentials(), srv.URL+"/")

			start := time.Now()
			link, err := service.CreateMeetingEvent(context.Background(), "Consultation", start, start.Add(time.Hour), nil)
			assert.Empty(t, link)

			var remoteErr *RemoteServiceError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, tt.wantStatus, remoteErr.StatusCode)
			assert.NotEmpty(t, remoteErr.Message)
			assert.Equal(t, int32(1), atomic.LoadInt32(&stub.hits))
		})
	}
}

func TestCreateMeetingEvent_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL + "/"
	srv.Close()

	service := newTestCalendarService(t, validCredentials(), baseURL)
	start := time.Now()
	_, err := service.CreateMeetingEvent(context.Background(), "Consultation", start, start.Add(time.Hour), nil)

	var remoteErr *RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadGateway, remoteErr.StatusCode)
}

func TestCreateMeetingEvent_CredentialsUnavailable(t *testing.T) {
	stub := &calendarStub{}
	srv := newCalendarServer(t, stub, http.StatusOK, `{}`)
	credentials := &staticCredentials{err: exceptions.ErrCalendarAuthorizationRequired(nil)}
	service := newTestCalendarService(t, credentials, srv.URL+"/")

	start := time.Now()
	_, err := service.CreateMeetingEvent(context.Background(), "Consultation", start, start.Add(time.Hour), nil)

	var remoteErr *RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.StatusCode)
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, int32(0), atomic.LoadInt32(&stub.hits))
}

func TestCreateMeetingEvent_InvalidInputMakesNoCall(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		summary   string
		start     time.Time
		end       time.Time
		attendees []string
	}{
		{name: "blank summary", summary: "  ", start: start, end: start.Add(time.Hour)},
		{name: "end before start", summary: "Consultation", start: start, end: start.Add(-time.Minute)},
		{name: "zero length window", summary: "Consultation", start: start, end: start},
		{name: "attendee not an email", summary: "Consultation", start: start, end: start.Add(time.Hour), attendees: []string{"not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &calendarStub{}
			srv := newCalendarServer(t, stub, http.StatusOK, `{}`)
			service := newTestCalendarService(t, validCredentials(), srv.URL+"/")

			_, err := service.CreateMeetingEvent(context.Background(), tt.summary, tt.start, tt.end, tt.attendees)
			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
			assert.Equal(t, int32(0), atomic.LoadInt32(&stub.hits))
		})
	}
}

func TestIsMeetingLink(t *testing.T) {
	assert.True(t, IsMeetingLink("https://meet.google.com/abc-defg-hij"))
	assert.True(t, IsMeetingLink("http://meet.example/abc"))
	assert.False(t, IsMeetingLink("meet.google.com/abc"))
	assert.False(t, IsMeetingLink("ftp://files.example/abc"))
	assert.False(t, IsMeetingLink("https://"))
	assert.False(t, IsMeetingLink(""))
}
