package notificationstore

import (
	notificationapimodels "ppalink-backend/models/api/notification"
	dbmodels "ppalink-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	List(userID string, filter notificationapimodels.NotificationFilter) (list []dbmodels.Notification, rowCount int64, err error)
	// ListUndelivered возвращает записи, не отправленные по живому соединению
	ListUndelivered(userID string) ([]dbmodels.Notification, error)
	MarkDelivered(ids []string) error
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
	UnreadCount(userID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(userID string, filter notificationapimodels.NotificationFilter) (list []dbmodels.Notification, rowCount int64, err error) {
	tx := i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID)
	if filter.OnlyUnread {
		tx.Where("is_read = false")
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListUndelivered(userID string) (list []dbmodels.Notification, err error) {
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("delivered = false").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkDelivered(ids []string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id in (?)", ids).
		Update("delivered", true).
		Error
}

func (i impl) MarkRead(userID, id string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Update("is_read", true).
		Error
}

func (i impl) MarkAllRead(userID string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Update("is_read", true).
		Error
}

func (i impl) UnreadCount(userID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("is_read = false").
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
