package video

import (
	"context"
	"telemed-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStartCall(t *testing.T) {
	uc := NewVideoUsecase(zap.NewNop())

	tests := []struct {
		name     string
		request  *requests.StartVideoCall
		expected string
	}{
		{name: "named doctor", request: &requests.StartVideoCall{Doctor: "Dr. Sharma"}, expected: "Dr. Sharma"},
		{name: "missing doctor", request: &requests.StartVideoCall{}, expected: "Unknown"},
		{name: "blank doctor", request: &requests.StartVideoCall{Doctor: "   "}, expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, err := uc.StartCall(context.Background(), tt.request)
			require.NoError(t, err)
			assert.Equal(t, "success", call.Status)
			assert.Equal(t, "room123", call.RoomID)
			assert.Equal(t, tt.expected, call.Doctor)
		})
	}
}
