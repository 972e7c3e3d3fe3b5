package contracts

import (
	"context"

	"github.com/gorilla/websocket"
)

type ChatUsecase interface {
	// ServeSession blocks until the connection ends and closes it.
	ServeSession(ctx context.Context, conn *websocket.Conn, roomID string) error
}
