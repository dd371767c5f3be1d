package dbmodels

import (
	messageapimodels "ppalink-backend/models/api/message"
)

// Message — сообщение в переписке по отклику между кандидатом и агентством.
type Message struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index:idx_message_application"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	FromUserID    string       `gorm:"type:varchar(36);index:idx_message_from"`
	FromUser      *User        `gorm:"foreignKey:FromUserID"`
	Body          string
	IsRead        bool `gorm:"default:false"`
}

func (r Message) ToModelView() messageapimodels.MessageView {
	view := messageapimodels.MessageView{
		ID:            r.ID,
		ApplicationID: r.ApplicationID,
		FromUserID:    r.FromUserID,
		Body:          r.Body,
		IsRead:        r.IsRead,
		CreatedAt:     r.CreatedAt,
	}
	if r.FromUser != nil {
		view.FromFullName = r.FromUser.GetFullName()
	}
	return view
}
