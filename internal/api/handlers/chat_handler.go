package handlers

import (
	"context"
	"errors"

	"telephysio/internal/chat"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const chatQueueSize = 32

type ChatHandler struct {
	room   *chat.Room
	logger *zap.Logger
}

func NewChatHandler(room *chat.Room, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		room:   room,
		logger: logger,
	}
}

// Upgrade rejects plain HTTP requests to the chat endpoint.
func (h *ChatHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve runs one socket: a writer goroutine drains the client's queue while
// this goroutine reads and handles incoming frames.
func (h *ChatHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := chat.NewClient(uuid.NewString(), chatQueueSize)
		hub := h.room.Hub()
		hub.Register(client)

		writerDone := make(chan struct{})
		go func() {
			defer close(writerDone)
			err := client.WritePump(func(frame []byte) error {
				return conn.WriteMessage(websocket.TextMessage, frame)
			})
			if err != nil {
				h.logger.Debug("Chat write failed", zap.String("client", client.ID), zap.Error(err))
			}
			// Unblocks the read loop when the hub drops this client.
			_ = conn.Close()
		}()

		ctx, cancel := context.WithCancel(context.Background())
		defer func() {
			cancel()
			hub.Unregister(client)
			<-writerDone
		}()

		for {
			messageType, frame, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}
			err = h.room.Handle(ctx, client, frame)
			if err != nil && !errors.Is(err, chat.ErrMalformedMessage) && !errors.Is(err, context.Canceled) {
				h.logger.Error("Chat message failed", zap.String("client", client.ID), zap.Error(err))
			}
		}
	})
}
