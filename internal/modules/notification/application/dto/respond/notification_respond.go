package respond

import "time"

type NotificationItem struct {
	Uuid      string                 `json:"uuid"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      string                 `json:"type"`
	UserId    *string                `json:"userId"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Status    int8                   `json:"status"`
	ReadAt    *time.Time             `json:"readAt"`
	CreatedAt time.Time              `json:"createdAt"`
}

type UnreadCountRespond struct {
	Count int64 `json:"count"`
}
