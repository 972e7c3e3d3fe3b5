package utils

import (
	"errors"
	"net/http"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	BuildJSONResponse(w, code, response)
}

// BuildJSONResponse writes body as-is, for endpoints whose shape is not the
// standard envelope.
func BuildJSONResponse(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var meetingErr *exceptions.MeetingCreationFailed
	if errors.As(err, &meetingErr) {
		log.Error(meetingErr.Error(),
			zap.String(constvars.LoggingAppointmentIDKey, meetingErr.AppointmentID),
		)
		BuildJSONResponse(w, constvars.StatusBadGateway, responses.MeetingCreationFailed{
			Success: false,
			ID:      meetingErr.AppointmentID,
			Error:   meetingCauseMessage(meetingErr),
			Message: constvars.ErrClientMeetingCreationFailed,
		})
		return
	}

	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication
	devMessage := ""

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		devMessage = customErr.DevMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Int(constvars.LoggingStatusCodeKey, code),
				zap.Any("location", location),
			)
		}
	} else {
		log.Error(err.Error())
	}

	if code == constvars.StatusUnauthorized {
		w.Header().Set(constvars.HeaderWWWAuthenticate, constvars.AuthorizationSchemeBearer)
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	if !isProduction() {
		response.DevMessage = devMessage
	}
	BuildJSONResponse(w, code, response)
}

func meetingCauseMessage(err *exceptions.MeetingCreationFailed) string {
	var customErr *exceptions.CustomError
	if errors.As(err.Cause, &customErr) {
		return customErr.ClientMessage
	}
	if err.Cause != nil {
		return err.Cause.Error()
	}
	return constvars.ErrClientMeetingCreationFailed
}

func isProduction() bool {
	return GetEnvString("APP_ENV", "development") == "production"
}
