package appointments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fakeAppointmentRepository keeps records in memory, mirroring the store
// contract closely enough for read-after-write checks.
type fakeAppointmentRepository struct {
	mu           sync.Mutex
	records      map[string]models.Appointment
	insertCalls  int
	updateCalls  int
	insertErr    error
	updateErr    error
	lastInserted *models.Appointment
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{records: make(map[string]models.Appointment)}
}

func (r *fakeAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertCalls++
	if r.insertErr != nil {
		return "", r.insertErr
	}
	appointment.ID = primitive.NewObjectID()
	r.records[appointment.ID.Hex()] = *appointment
	r.lastInserted = appointment
	return appointment.ID.Hex(), nil
}

func (r *fakeAppointmentRepository) UpdateMeetingLink(ctx context.Context, appointmentID, meetingLink string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	record, ok := r.records[appointmentID]
	if !ok {
		return exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	record.MeetingLink = meetingLink
	r.records[appointmentID] = record
	return nil
}

func (r *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[appointmentID]
	if !ok {
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	return &record, nil
}

type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) CreateMeetingEvent(ctx context.Context, summary string, startTime, endTime time.Time, attendees []string) (string, error) {
	args := m.Called(ctx, summary, startTime, endTime, attendees)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func ashaRequest() *requests.CreateAppointment {
	return &requests.CreateAppointment{
		PatientName: "Asha",
		DoctorName:  "Dr. Rao",
		ScheduledAt: "2025-03-01T10:00:00+05:30",
		Reason:      "checkup",
	}
}

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	location, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return location
}

func newTestUsecase(t *testing.T, repo *fakeAppointmentRepository, calendar *MockCalendarService, publisher *MockEventPublisher) *appointmentUsecase {
	t.Helper()
	uc := NewAppointmentUsecase(repo, calendar, nil, kolkata(t), zap.NewNop()).(*appointmentUsecase)
	if publisher != nil {
		uc.EventPublisher = publisher
	}
	return uc
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("fields echo input and ids are unique", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		calendar := new(MockCalendarService)
		uc := newTestUsecase(t, repo, calendar, nil)

		seen := make(map[string]bool)
		for i := 0; i < 5; i++ {
			appointment, err := uc.CreateAppointment(ctx, ashaRequest())
			require.NoError(t, err)
			assert.NotEmpty(t, appointment.ID)
			assert.False(t, seen[appointment.ID], "duplicate id %s", appointment.ID)
			seen[appointment.ID] = true

			assert.Equal(t, "Asha", appointment.PatientName)
			assert.Equal(t, "Dr. Rao", appointment.DoctorName)
			assert.Equal(t, "checkup", appointment.Reason)
			assert.True(t, appointment.ScheduledAt.Equal(time.Date(2025, 3, 1, 4, 30, 0, 0, time.UTC)))
			assert.Empty(t, appointment.MeetingLink)
		}
		assert.Equal(t, 5, repo.insertCalls)
		calendar.AssertNotCalled(t, "CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("names are trimmed before storing", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(t, repo, new(MockCalendarService), nil)

		request := ashaRequest()
		request.PatientName = "  Asha  "
		request.DoctorName = "\tDr. Rao\n"
		appointment, err := uc.CreateAppointment(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "Asha", appointment.PatientName)
		assert.Equal(t, "Dr. Rao", repo.lastInserted.DoctorName)
	})

	t.Run("timestamp without offset is read in the configured zone", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		uc := newTestUsecase(t, repo, new(MockCalendarService), nil)

		request := ashaRequest()
		request.ScheduledAt = "2025-03-01T10:00:00"
		appointment, err := uc.CreateAppointment(ctx, request)
		require.NoError(t, err)
		assert.True(t, appointment.ScheduledAt.Equal(time.Date(2025, 3, 1, 4, 30, 0, 0, time.UTC)))
	})

	t.Run("storage failure is returned as is", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		repo.insertErr = exceptions.ErrStorageUnavailable(errors.New("connection refused"))
		uc := newTestUsecase(t, repo, new(MockCalendarService), nil)

		appointment, err := uc.CreateAppointment(ctx, ashaRequest())
		assert.Nil(t, appointment)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})
}

func TestCreateAppointment_RejectsMalformedInputWithoutSideEffects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *requests.CreateAppointment)
	}{
		{name: "empty patient name", mutate: func(r *requests.CreateAppointment) { r.PatientName = "" }},
		{name: "blank patient name", mutate: func(r *requests.CreateAppointment) { r.PatientName = "   " }},
		{name: "empty doctor name", mutate: func(r *requests.CreateAppointment) { r.DoctorName = "" }},
		{name: "missing timestamp", mutate: func(r *requests.CreateAppointment) { r.ScheduledAt = "" }},
		{name: "unparsable timestamp", mutate: func(r *requests.CreateAppointment) { r.ScheduledAt = "next tuesday" }},
		{name: "impossible date", mutate: func(r *requests.CreateAppointment) { r.ScheduledAt = "2025-02-30T10:00:00Z" }},
		{name: "attendee not an email", mutate: func(r *requests.CreateAppointment) { r.Attendees = []string{"asha"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, withMeeting := range []bool{false, true} {
				repo := newFakeAppointmentRepository()
				calendar := new(MockCalendarService)
				uc := newTestUsecase(t, repo, calendar, nil)

				request := ashaRequest()
				tt.mutate(request)

				var err error
				if withMeeting {
					_, err = uc.CreateAppointmentWithMeeting(context.Background(), request)
				} else {
					_, err = uc.CreateAppointment(context.Background(), request)
				}

				var customErr *exceptions.CustomError
				require.ErrorAs(t, err, &customErr)
				assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
				assert.Equal(t, 0, repo.insertCalls)
				calendar.AssertNotCalled(t, "CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestCreateAppointmentWithMeeting_Success(t *testing.T) {
	repo := newFakeAppointmentRepository()
	calendar := new(MockCalendarService)
	calendar.On("CreateMeetingEvent", mock.Anything, "Consultation: Asha with Dr. Rao", mock.Anything, mock.Anything, []string{}).
		Return("https://meet.example/abc", nil)
	uc := newTestUsecase(t, repo, calendar, nil)

	appointment, err := uc.CreateAppointmentWithMeeting(context.Background(), ashaRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, "https://meet.example/abc", appointment.MeetingLink)
	assert.Equal(t, "Asha", appointment.PatientName)
	assert.Equal(t, "Dr. Rao", appointment.DoctorName)
	assert.Equal(t, "checkup", appointment.Reason)
	assert.NotNil(t, appointment.UpdatedAt)

	stored, err := repo.FindByID(context.Background(), appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://meet.example/abc", stored.MeetingLink)
	assert.Equal(t, "Asha", stored.PatientName)
	assert.Equal(t, "checkup", stored.Reason)

	call := calendar.Calls[0]
	start := call.Arguments.Get(2).(time.Time)
	end := call.Arguments.Get(3).(time.Time)
	assert.True(t, start.Equal(time.Date(2025, 3, 1, 4, 30, 0, 0, time.UTC)))
	assert.Equal(t, time.Hour, end.Sub(start))
	calendar.AssertExpectations(t)
}

func TestCreateAppointmentWithMeeting_WindowIsAlwaysOneHour(t *testing.T) {
	scheduledAts := []string{
		"2025-03-01T10:00:00+05:30",
		"2025-03-01T23:30:00+05:30",
		"2025-12-31T23:59:59Z",
		"2024-02-28T23:15:00",
		"2025-03-09T01:30:00-08:00",
	}

	for _, scheduledAt := range scheduledAts {
		t.Run(scheduledAt, func(t *testing.T) {
			repo := newFakeAppointmentRepository()
			calendar := new(MockCalendarService)
			calendar.On("CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return("https://meet.example/abc", nil)
			uc := newTestUsecase(t, repo, calendar, nil)

			request := ashaRequest()
			request.ScheduledAt = scheduledAt
			_, err := uc.CreateAppointmentWithMeeting(context.Background(), request)
			require.NoError(t, err)

			start := calendar.Calls[0].Arguments.Get(2).(time.Time)
			end := calendar.Calls[0].Arguments.Get(3).(time.Time)
			assert.Equal(t, time.Hour, end.Sub(start))
			assert.True(t, start.Equal(repo.lastInserted.ScheduledAt))
		})
	}
}

func TestCreateAppointmentWithMeeting_ForwardsAttendees(t *testing.T) {
	repo := newFakeAppointmentRepository()
	calendar := new(MockCalendarService)
	calendar.On("CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, []string{"asha@example.com", "rao@clinic.example"}).
		Return("https://meet.example/abc", nil)
	uc := newTestUsecase(t, repo, calendar, nil)

	request := ashaRequest()
	request.Attendees = []string{" Asha@Example.com ", "rao@clinic.example"}
	_, err := uc.CreateAppointmentWithMeeting(context.Background(), request)
	require.NoError(t, err)
	calendar.AssertExpectations(t)
}

func TestCreateAppointmentWithMeeting_CalendarFailureKeepsBooking(t *testing.T) {
	repo := newFakeAppointmentRepository()
	calendar := new(MockCalendarService)
	calendar.On("CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("calendar request failed (status 503): backend error"))
	uc := newTestUsecase(t, repo, calendar, nil)

	appointment, err := uc.CreateAppointmentWithMeeting(context.Background(), ashaRequest())
	assert.Nil(t, appointment)

	var meetingErr *exceptions.MeetingCreationFailed
	require.ErrorAs(t, err, &meetingErr)
	require.NotEmpty(t, meetingErr.AppointmentID)

	stored, err := repo.FindByID(context.Background(), meetingErr.AppointmentID)
	require.NoError(t, err)
	assert.Empty(t, stored.MeetingLink)
	assert.Equal(t, "Asha", stored.PatientName)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestCreateAppointmentWithMeeting_LinkUpdateFailureCarriesID(t *testing.T) {
	repo := newFakeAppointmentRepository()
	repo.updateErr = exceptions.ErrStorageUnavailable(errors.New("server selection timeout"))
	calendar := new(MockCalendarService)
	calendar.On("CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://meet.example/abc", nil)
	uc := newTestUsecase(t, repo, calendar, nil)

	_, err := uc.CreateAppointmentWithMeeting(context.Background(), ashaRequest())

	var meetingErr *exceptions.MeetingCreationFailed
	require.ErrorAs(t, err, &meetingErr)
	assert.Equal(t, repo.lastInserted.ID.Hex(), meetingErr.AppointmentID)
}

func TestCreateAppointmentWithMeeting_RepeatedCallsOverwriteLink(t *testing.T) {
	repo := newFakeAppointmentRepository()
	calendar := new(MockCalendarService)
	calendar.On("CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://meet.example/first", nil).Once()
	calendar.On("CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://meet.example/second", nil).Once()
	uc := newTestUsecase(t, repo, calendar, nil)

	first, err := uc.CreateAppointmentWithMeeting(context.Background(), ashaRequest())
	require.NoError(t, err)

	second, err := uc.AttachMeeting(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "https://meet.example/second", second.MeetingLink)

	stored, err := repo.FindByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://meet.example/second", stored.MeetingLink)
}

func TestAttachMeeting(t *testing.T) {
	t.Run("retries meeting step for stored booking", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		calendar := new(MockCalendarService)
		calendar.On("CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", errors.New("boom")).Once()
		calendar.On("CreateMeetingEvent", mock.Anything, "Consultation: Asha with Dr. Rao", mock.Anything, mock.Anything, mock.Anything).
			Return("https://meet.example/abc", nil).Once()
		uc := newTestUsecase(t, repo, calendar, nil)

		_, err := uc.CreateAppointmentWithMeeting(context.Background(), ashaRequest())
		var meetingErr *exceptions.MeetingCreationFailed
		require.ErrorAs(t, err, &meetingErr)

		appointment, err := uc.AttachMeeting(context.Background(), meetingErr.AppointmentID)
		require.NoError(t, err)
		assert.Equal(t, meetingErr.AppointmentID, appointment.ID)
		assert.Equal(t, "https://meet.example/abc", appointment.MeetingLink)
		assert.Equal(t, 1, repo.insertCalls)
	})

	t.Run("unknown appointment is not found", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		calendar := new(MockCalendarService)
		uc := newTestUsecase(t, repo, calendar, nil)

		_, err := uc.AttachMeeting(context.Background(), primitive.NewObjectID().Hex())
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		calendar.AssertNotCalled(t, "CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFindAppointment(t *testing.T) {
	repo := newFakeAppointmentRepository()
	uc := newTestUsecase(t, repo, new(MockCalendarService), nil)

	created, err := uc.CreateAppointment(context.Background(), ashaRequest())
	require.NoError(t, err)

	found, err := uc.FindAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.PatientName, found.PatientName)

	_, err = uc.FindAppointment(context.Background(), "missing")
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestAppointmentEvents(t *testing.T) {
	t.Run("created and meeting events are published", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		calendar := new(MockCalendarService)
		calendar.On("CreateMeetingEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("https://meet.example/abc", nil)
		publisher := new(MockEventPublisher)
		publisher.On("PublishAppointmentEvent", mock.Anything, mock.MatchedBy(func(e *requests.AppointmentEvent) bool {
			return e.Type == constvars.AppointmentEventCreated && e.MeetingLink == ""
		})).Return(nil).Once()
		publisher.On("PublishAppointmentEvent", mock.Anything, mock.MatchedBy(func(e *requests.AppointmentEvent) bool {
			return e.Type == constvars.AppointmentEventMeeting && e.MeetingLink == "https://meet.example/abc"
		})).Return(nil).Once()
		uc := newTestUsecase(t, repo, calendar, publisher)

		appointment, err := uc.CreateAppointmentWithMeeting(context.Background(), ashaRequest())
		require.NoError(t, err)
		assert.Equal(t, "https://meet.example/abc", appointment.MeetingLink)
		publisher.AssertExpectations(t)
	})

	t.Run("publish failure does not change the outcome", func(t *testing.T) {
		repo := newFakeAppointmentRepository()
		publisher := new(MockEventPublisher)
		publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(fmt.Errorf("channel closed"))
		uc := newTestUsecase(t, repo, new(MockCalendarService), publisher)

		appointment, err := uc.CreateAppointment(context.Background(), ashaRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, appointment.ID)
	})
}
