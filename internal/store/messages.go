package store

import (
	"context"
	"sync"

	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/common/validation"
	"jobmarket-client/internal/models"
)

type Messages struct {
	Conversations *Container[[]models.Conversation]
	Thread        *Container[[]models.Message]
	Outgoing      *Container[*models.Message]

	api      MessagesAPI
	pageSize int

	mu             sync.Mutex
	conversationID string
}

func NewMessages(client MessagesAPI, pageSize int, log logger.Logger) *Messages {
	return &Messages{
		Conversations: NewContainer[[]models.Conversation]("conversations", log),
		Thread:        NewContainer[[]models.Message]("messages", log),
		Outgoing:      NewContainer[*models.Message]("message_send", log),
		api:           client,
		pageSize:      pageSize,
	}
}

func (m *Messages) FetchConversations(ctx context.Context, page int) (State[[]models.Conversation], error) {
	return m.Conversations.Run(ctx, func(ctx context.Context) (Result[[]models.Conversation], error) {
		p, err := m.api.ListConversations(ctx, listParams(page, m.pageSize))
		if err != nil {
			return Result[[]models.Conversation]{}, err
		}
		return pageResult(p), nil
	})
}

// FetchMessages loads one page of a conversation and makes it the open thread.
func (m *Messages) FetchMessages(ctx context.Context, conversationID string, page int) (State[[]models.Message], error) {
	m.mu.Lock()
	m.conversationID = conversationID
	m.mu.Unlock()

	return m.Thread.Run(ctx, func(ctx context.Context) (Result[[]models.Message], error) {
		p, err := m.api.ListMessages(ctx, conversationID, listParams(page, m.pageSize))
		if err != nil {
			return Result[[]models.Message]{}, err
		}
		return pageResult(p), nil
	})
}

// OpenConversation is the id of the thread last fetched.
func (m *Messages) OpenConversation() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conversationID
}

// Send posts a message; when it belongs to the open thread it is appended there.
func (m *Messages) Send(ctx context.Context, conversationID, body string) (State[*models.Message], error) {
	st, err := m.Outgoing.Run(ctx, func(ctx context.Context) (Result[*models.Message], error) {
		req := models.MessageRequest{Body: body}
		if err := validation.Check(validation.FormMessage, req); err != nil {
			return Result[*models.Message]{}, err
		}

		msg, err := m.api.SendMessage(ctx, conversationID, req)
		if err != nil {
			return Result[*models.Message]{}, err
		}
		return Result[*models.Message]{Data: msg}, nil
	})
	if err != nil || st.Data == nil {
		return st, err
	}

	if m.OpenConversation() == conversationID {
		sent := *st.Data
		m.Thread.Mutate(func(thread []models.Message) []models.Message {
			out := make([]models.Message, 0, len(thread)+1)
			out = append(out, thread...)
			return append(out, sent)
		})
	}
	return st, nil
}

func (m *Messages) Reset() {
	m.mu.Lock()
	m.conversationID = ""
	m.mu.Unlock()

	m.Conversations.Reset()
	m.Thread.Reset()
	m.Outgoing.Reset()
}
