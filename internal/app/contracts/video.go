package contracts

import (
	"context"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
)

type VideoUsecase interface {
	StartCall(ctx context.Context, request *requests.StartVideoCall) (*responses.VideoCall, error)
}
