package dbmodels

import (
	"ppalink-backend/models"
	notificationapimodels "ppalink-backend/models/api/notification"
)

type Notification struct {
	BaseModel
	UserID    string                  `gorm:"type:varchar(36);index:idx_notification_user"`
	Code      models.NotificationCode `gorm:"type:varchar(255);index:idx_notification_code"`
	Title     string                  `gorm:"type:varchar(255)"`
	Msg       string
	Link      string `gorm:"type:varchar(500)"`
	IsRead    bool
	Delivered bool // отправлено ли по живому соединению
}

func (r Notification) ToModelView() notificationapimodels.NotificationView {
	return notificationapimodels.NotificationView{
		ID:        r.ID,
		Code:      r.Code,
		Title:     r.Title,
		Msg:       r.Msg,
		Link:      r.Link,
		IsRead:    r.IsRead,
		CreatedAt: r.CreatedAt,
	}
}
