package chat

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"telephysio/internal/faq"
	"telephysio/pkg/metrics"

	"go.uber.org/zap"
)

var ErrMalformedMessage = errors.New("malformed chat message")

// Answerer produces the assistant's reply, including any typing delay.
type Answerer interface {
	Reply(ctx context.Context, text string) (faq.Answer, error)
}

// Room runs the conversation protocol on top of a Hub.
type Room struct {
	hub      *Hub
	answerer Answerer
	now      func() time.Time
	logger   *zap.Logger
}

func NewRoom(hub *Hub, answerer Answerer, logger *zap.Logger) *Room {
	return &Room{hub: hub, answerer: answerer, now: time.Now, logger: logger}
}

// WithClock replaces the time source used for message timestamps.
func (r *Room) WithClock(now func() time.Time) *Room {
	r.now = now
	return r
}

func (r *Room) Hub() *Hub {
	return r.hub
}

// Handle processes one frame received from c. Unknown events are ignored;
// messages without text or username are logged and dropped.
func (r *Room) Handle(ctx context.Context, c *Client, frame []byte) error {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		r.logger.Warn("Received malformed chat frame", zap.String("client", c.ID), zap.Error(err))
		return ErrMalformedMessage
	}
	if env.Event != EventSendMessage {
		r.logger.Debug("Ignoring chat event", zap.String("event", env.Event))
		return nil
	}

	var in IncomingMessage
	if err := json.Unmarshal(env.Data, &in); err != nil || in.Text == "" || in.Username == "" {
		r.logger.Warn("Received malformed message", zap.String("client", c.ID), zap.ByteString("data", env.Data))
		return ErrMalformedMessage
	}
	metrics.ChatMessages.Inc()

	if err := r.hub.Broadcast(EventReceiveMessage, Message{
		Text:      in.Text,
		Username:  in.Username,
		Timestamp: Timestamp(r.now()),
	}); err != nil {
		return err
	}

	if err := r.hub.SendTo(c, EventReceiveMessage, Message{
		Text:      TypingText,
		Username:  AssistantName,
		Timestamp: Timestamp(r.now()),
		IsTyping:  true,
	}); err != nil {
		return err
	}

	answer, err := r.answerer.Reply(ctx, in.Text)
	if err != nil {
		return err
	}

	if err := r.hub.SendTo(c, EventClearTyping, ClearTyping{Username: AssistantName}); err != nil {
		return err
	}

	return r.hub.Broadcast(EventReceiveMessage, Message{
		Text:      answer.Text,
		Username:  AssistantName,
		Timestamp: Timestamp(r.now()),
	})
}
