// internal/models/notification.go
package models

import "time"

type Notification struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // "application_update", "new_message", "job_match"
	Title     string                 `json:"title"`
	Body      string                 `json:"body,omitempty"`
	Read      bool                   `json:"read"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
