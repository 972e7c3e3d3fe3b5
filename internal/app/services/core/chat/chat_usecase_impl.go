package chat

import (
	"context"
	"errors"
	"fmt"
	"net"
	"telemed-service/internal/app/config"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/utils"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const writeWait = 10 * time.Second

type Options struct {
	IdleTimeout       time.Duration
	MaxMessageSize    int64
	MessagesPerSecond int
}

type chatUsecase struct {
	Options Options
	Log     *zap.Logger
}

func OptionsFromConfig(cfg *config.InternalConfig) Options {
	return Options{
		IdleTimeout:       time.Duration(cfg.Chat.IdleTimeoutInSeconds) * time.Second,
		MaxMessageSize:    int64(cfg.Chat.MaxMessageSizeInBytes),
		MessagesPerSecond: cfg.Chat.MaxMessagesPerSecond,
	}
}

func NewChatUsecase(opts Options, logger *zap.Logger) contracts.ChatUsecase {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = 5 * time.Minute
	}
	if opts.MessagesPerSecond <= 0 {
		opts.MessagesPerSecond = 1
	}
	return &chatUsecase{
		Options: opts,
		Log:     logger,
	}
}

// ServeSession runs one connection: a confirmation frame, then an echo per
// text frame until the client leaves, a read fails or the idle timeout hits.
func (uc *chatUsecase) ServeSession(ctx context.Context, conn *websocket.Conn, roomID string) error {
	requestID := utils.RequestIDFromContext(ctx)
	log := uc.Log.With(
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoomIDKey, roomID),
	)
	log.Info("chatUsecase.ServeSession started")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer conn.Close()

	if uc.Options.MaxMessageSize > 0 {
		conn.SetReadLimit(uc.Options.MaxMessageSize)
	}
	extendDeadline := func() error {
		return conn.SetReadDeadline(time.Now().Add(uc.Options.IdleTimeout))
	}
	if err := extendDeadline(); err != nil {
		log.Warn("chatUsecase.ServeSession error setting read deadline", zap.Error(err))
		return err
	}
	conn.SetPongHandler(func(string) error { return extendDeadline() })

	err := uc.write(conn, fmt.Sprintf(constvars.ChatConnectedMessageFormat, roomID))
	if err != nil {
		log.Warn("chatUsecase.ServeSession error sending confirmation", zap.Error(err))
		return err
	}

	go uc.keepAlive(ctx, conn)

	limiter := rate.NewLimiter(rate.Limit(uc.Options.MessagesPerSecond), uc.Options.MessagesPerSecond)
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			return uc.endSession(log, err)
		}
		if err := extendDeadline(); err != nil {
			log.Warn("chatUsecase.ServeSession error extending read deadline", zap.Error(err))
			return err
		}

		if messageType != websocket.TextMessage {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			log.Info("chatUsecase.ServeSession ended while waiting for rate limiter", zap.Error(err))
			return nil
		}
		if err := uc.write(conn, constvars.ChatEchoPrefix+string(message)); err != nil {
			log.Warn("chatUsecase.ServeSession error writing echo", zap.Error(err))
			return err
		}
	}
}

func (uc *chatUsecase) write(conn *websocket.Conn, text string) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, []byte(text))
}

// keepAlive pings at half the idle timeout. WriteControl may run alongside
// the read loop's writes.
func (uc *chatUsecase) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(uc.Options.IdleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			return
		case <-ticker.C:
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			if err != nil {
				return
			}
		}
	}
}

func (uc *chatUsecase) endSession(log *zap.Logger, err error) error {
	var netErr net.Error
	switch {
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived):
		log.Info("chatUsecase.ServeSession closed by client")
		return nil
	case errors.As(err, &netErr) && netErr.Timeout():
		log.Info("chatUsecase.ServeSession idle timeout")
		return nil
	default:
		log.Warn("chatUsecase.ServeSession read error", zap.Error(err))
		return err
	}
}
