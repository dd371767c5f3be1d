package notificationapimodels

import (
	"time"

	"ppalink-backend/models"
	apimodels "ppalink-backend/models/api"
)

type NotificationView struct {
	ID        string                  `json:"id"`
	Code      models.NotificationCode `json:"code"`
	Title     string                  `json:"title"`
	Msg       string                  `json:"msg"`
	Link      string                  `json:"link,omitempty"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

type NotificationFilter struct {
	apimodels.Pagination
	OnlyUnread bool `json:"only_unread"`
}
