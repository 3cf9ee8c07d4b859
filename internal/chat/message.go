package chat

import (
	"encoding/json"
	"time"
)

const (
	EventSendMessage    = "send_message"
	EventReceiveMessage = "receive_message"
	EventClearTyping    = "clear_typing_indicator"

	AssistantName = "AI Assistant"
	TypingText    = "Typing..."

	timestampLayout = "03:04 PM"
)

// Envelope frames every message on the socket in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type IncomingMessage struct {
	Text     string `json:"text"`
	Username string `json:"username"`
}

type Message struct {
	Text      string `json:"text"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
	IsTyping  bool   `json:"isTyping,omitempty"`
}

type ClearTyping struct {
	Username string `json:"username"`
}

// Timestamp formats t the way chat messages display it.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

func encode(event string, data interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}
