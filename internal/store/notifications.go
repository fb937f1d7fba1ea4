package store

import (
	"context"

	"jobmarket-client/internal/common/logger"
	"jobmarket-client/internal/models"
)

type Notifications struct {
	List *Container[[]models.Notification]
	Mark *Container[*models.Notification]

	api      NotificationsAPI
	pageSize int
}

func NewNotifications(client NotificationsAPI, pageSize int, log logger.Logger) *Notifications {
	return &Notifications{
		List:     NewContainer[[]models.Notification]("notifications", log),
		Mark:     NewContainer[*models.Notification]("notification_read", log),
		api:      client,
		pageSize: pageSize,
	}
}

func (n *Notifications) FetchPage(ctx context.Context, page int) (State[[]models.Notification], error) {
	return n.List.Run(ctx, func(ctx context.Context) (Result[[]models.Notification], error) {
		p, err := n.api.ListNotifications(ctx, listParams(page, n.pageSize))
		if err != nil {
			return Result[[]models.Notification]{}, err
		}
		return pageResult(p), nil
	})
}

// MarkRead marks one notification read and reflects it in the held page.
func (n *Notifications) MarkRead(ctx context.Context, id string) (State[*models.Notification], error) {
	st, err := n.Mark.Run(ctx, func(ctx context.Context) (Result[*models.Notification], error) {
		updated, err := n.api.MarkNotificationRead(ctx, id)
		if err != nil {
			return Result[*models.Notification]{}, err
		}
		return Result[*models.Notification]{Data: updated}, nil
	})
	if err != nil {
		return st, err
	}

	n.List.Mutate(func(list []models.Notification) []models.Notification {
		out := make([]models.Notification, len(list))
		copy(out, list)
		for i := range out {
			if out[i].ID == id {
				out[i].Read = true
			}
		}
		return out
	})
	return st, nil
}

// Unread counts unread notifications in the held page.
func (n *Notifications) Unread() int {
	count := 0
	for _, item := range n.List.Snapshot().Data {
		if !item.Read {
			count++
		}
	}
	return count
}

func (n *Notifications) Reset() {
	n.List.Reset()
	n.Mark.Reset()
}
