package controllers

import (
	"net/http"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type ChatController struct {
	Log         *zap.Logger
	ChatUsecase contracts.ChatUsecase
	Upgrader    websocket.Upgrader
}

func NewChatController(logger *zap.Logger, chatUsecase contracts.ChatUsecase, allowedOrigins []string, maxMessageSize int) *ChatController {
	return &ChatController{
		Log:         logger,
		ChatUsecase: chatUsecase,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: maxMessageSize,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

func (ctrl *ChatController) Connect(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	roomID := chi.URLParam(r, constvars.URLParamRoomID)

	conn, err := ctrl.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		ctrl.Log.Warn("ChatController.Connect upgrade failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoomIDKey, roomID),
			zap.Error(err),
		)
		return
	}

	if err := ctrl.ChatUsecase.ServeSession(r.Context(), conn, roomID); err != nil {
		ctrl.Log.Warn("ChatController.Connect session ended with error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoomIDKey, roomID),
			zap.Error(err),
		)
	}
}

func checkOrigin(allowedOrigins []string) func(r *http.Request) bool {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return allowAll || origin == "" || allowed[origin]
	}
}
