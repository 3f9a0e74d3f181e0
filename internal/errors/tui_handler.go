package errors

import (
	"time"
)

// ErrorTitle is the heading shown above error details in the TUI.
const ErrorTitle = "오류 발생"

// TUIHandler collects messages for display inside the TUI instead of
// writing them to the terminal directly.
type TUIHandler struct {
	messages  []Message
	onMessage func(msg Message)
}

type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

func NewTUIHandler(onMessage func(msg Message)) *TUIHandler {
	return &TUIHandler{
		messages:  make([]Message, 0),
		onMessage: onMessage,
	}
}

func (h *TUIHandler) Error(msg string) {
	h.addMessage(msg, MessageTypeError)
}

func (h *TUIHandler) Warning(msg string) {
	h.addMessage(msg, MessageTypeWarning)
}

func (h *TUIHandler) Info(msg string) {
	h.addMessage(msg, MessageTypeInfo)
}

func (h *TUIHandler) Success(msg string) {
	h.addMessage(msg, MessageTypeSuccess)
}

func (h *TUIHandler) addMessage(msg string, msgType MessageType) {
	message := Message{
		Text:      msg,
		Type:      msgType,
		Timestamp: time.Now(),
	}
	h.messages = append(h.messages, message)

	if h.onMessage != nil {
		h.onMessage(message)
	}
}

func (h *TUIHandler) GetLatest() (Message, bool) {
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

func (h *TUIHandler) GetAll() []Message {
	copied := make([]Message, len(h.messages))
	copy(copied, h.messages)
	return copied
}

func (h *TUIHandler) Clear() {
	h.messages = make([]Message, 0)
}
