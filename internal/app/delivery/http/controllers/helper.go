package controllers

import (
	"context"
	"errors"
	"net/http"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// requestContext keeps the request-scoped values but not the client's
// cancellation, so a disconnect does not abort a booking halfway.
func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(context.WithoutCancel(r.Context()), timeout)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return exceptions.ErrCannotParseJSON(errors.New("empty request body"))
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var meetingErr *exceptions.MeetingCreationFailed
	if !errors.As(err, &meetingErr) && errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
