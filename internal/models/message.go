// internal/models/message.go
package models

import "time"

type Conversation struct {
	ID           string    `json:"id"`
	Participants []User    `json:"participants,omitempty"`
	LastMessage  *Message  `json:"lastMessage,omitempty"`
	UnreadCount  int       `json:"unreadCount"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MessageRequest is the body of POST /conversations/{id}/messages.
type MessageRequest struct {
	Body string `json:"body"`
}
