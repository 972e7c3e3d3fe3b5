package calendar

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var (
	errEmptySummary      = errors.New("summary must not be empty")
	errInvalidTimeWindow = errors.New("start time must be before end time")
	errMissingLink       = errors.New("event has no video conference link")
	errMalformedLink     = errors.New("conference link is not an absolute http(s) URL")
)

type googleCalendarService struct {
	Credentials contracts.CredentialProvider
	CalendarID  string
	Location    *time.Location
	// BaseURL overrides the API endpoint, used against test servers.
	BaseURL string
	Log     *zap.Logger
}

func NewGoogleCalendarService(credentials contracts.CredentialProvider, calendarID string, location *time.Location, baseURL string, logger *zap.Logger) contracts.CalendarService {
	if location == nil {
		location = time.UTC
	}
	return &googleCalendarService{
		Credentials: credentials,
		CalendarID:  calendarID,
		Location:    location,
		BaseURL:     baseURL,
		Log:         logger,
	}
}

func (s *googleCalendarService) CreateMeetingEvent(ctx context.Context, summary string, startTime, endTime time.Time, attendees []string) (string, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.Log.Info("googleCalendarService.CreateMeetingEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCalendarIDKey, s.CalendarID),
		zap.Time(constvars.LoggingStartTimeKey, startTime),
		zap.Time(constvars.LoggingEndTimeKey, endTime),
		zap.Int(constvars.LoggingAttendeesKey, len(attendees)),
	)

	err := validateMeetingEvent(summary, startTime, endTime, attendees)
	if err != nil {
		return "", exceptions.ErrCalendarInvalidEvent(err)
	}

	token, err := s.Credentials.Get(ctx)
	if err != nil {
		s.Log.Error("googleCalendarService.CreateMeetingEvent credentials unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", &RemoteServiceError{StatusCode: http.StatusUnauthorized, Message: err.Error(), Err: err}
	}

	opts := []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))),
	}
	if s.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(s.BaseURL))
	}
	service, err := gcalendar.NewService(ctx, opts...)
	if err != nil {
		return "", newRemoteServiceError(err)
	}

	event := s.buildEvent(summary, startTime, endTime, attendees)
	created, err := service.Events.Insert(s.CalendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		s.Log.Error("googleCalendarService.CreateMeetingEvent insert failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", newRemoteServiceError(err)
	}

	link, err := meetingLinkFromEvent(created)
	if err != nil {
		s.Log.Error("googleCalendarService.CreateMeetingEvent malformed response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", &RemoteServiceError{StatusCode: http.StatusBadGateway, Message: err.Error(), Err: err}
	}

	s.Log.Info("googleCalendarService.CreateMeetingEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMeetingLinkKey, link),
	)
	return link, nil
}

func (s *googleCalendarService) buildEvent(summary string, startTime, endTime time.Time, attendees []string) *gcalendar.Event {
	eventAttendees := make([]*gcalendar.EventAttendee, 0, len(attendees))
	for _, email := range attendees {
		eventAttendees = append(eventAttendees, &gcalendar.EventAttendee{Email: email})
	}

	return &gcalendar.Event{
		Summary: strings.TrimSpace(summary),
		Start: &gcalendar.EventDateTime{
			DateTime: startTime.In(s.Location).Format(time.RFC3339),
			TimeZone: s.Location.String(),
		},
		End: &gcalendar.EventDateTime{
			DateTime: endTime.In(s.Location).Format(time.RFC3339),
			TimeZone: s.Location.String(),
		},
		Attendees: eventAttendees,
		ConferenceData: &gcalendar.ConferenceData{
			CreateRequest: &gcalendar.CreateConferenceRequest{
				RequestId: utils.GenerateUUID(),
				ConferenceSolutionKey: &gcalendar.ConferenceSolutionKey{
					Type: constvars.CalendarConferenceSolutionHangoutsMeet,
				},
			},
		},
	}
}

func validateMeetingEvent(summary string, startTime, endTime time.Time, attendees []string) error {
	if strings.TrimSpace(summary) == "" {
		return errEmptySummary
	}
	if !startTime.Before(endTime) {
		return errInvalidTimeWindow
	}
	for _, email := range attendees {
		if err := utils.ValidateVar(email, "email"); err != nil {
			return err
		}
	}
	return nil
}

func meetingLinkFromEvent(event *gcalendar.Event) (string, error) {
	link := event.HangoutLink
	if link == "" && event.ConferenceData != nil {
		for _, entryPoint := range event.ConferenceData.EntryPoints {
			if entryPoint.EntryPointType == constvars.CalendarEntryPointVideo && entryPoint.Uri != "" {
				link = entryPoint.Uri
				break
			}
		}
	}
	if link == "" {
		return "", errMissingLink
	}
	if !IsMeetingLink(link) {
		return "", errMalformedLink
	}
	return link, nil
}

func IsMeetingLink(link string) bool {
	parsed, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
