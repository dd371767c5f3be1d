package notificationhandler

import (
	"time"

	"ppalink-backend/db"
	notificationstore "ppalink-backend/lib/notification/store"
	"ppalink-backend/lib/presence"
	connectionhub "ppalink-backend/lib/ws/hub/connection-hub"
	"ppalink-backend/models"
	notificationapimodels "ppalink-backend/models/api/notification"
	dbmodels "ppalink-backend/models/db"
	wsmodels "ppalink-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Notify сохраняет уведомление и, если получатель онлайн, отправляет его по живому соединению.
	// Запись в БД — гарантия доставки, живой пуш выполняется без подтверждения и повторов.
	Notify(userID string, data models.NotificationData) error
	List(userID string, filter notificationapimodels.NotificationFilter) (list []notificationapimodels.NotificationView, rowCount int64, err error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
	UnreadCount(userID string) (int64, error)
}

var Instance Provider

func NewHandler(registry presence.Provider) {
	Instance = impl{
		store:    notificationstore.NewInstance(db.DB),
		registry: registry,
		hub:      hubSender{},
	}
}

type wsSender interface {
	SendMessage(msg wsmodels.ServerMessage)
}

// hubSender откладывает обращение к connectionhub.Instance до момента отправки
type hubSender struct{}

func (hubSender) SendMessage(msg wsmodels.ServerMessage) {
	connectionhub.Instance.SendMessage(msg)
}

type impl struct {
	store    notificationstore.Provider
	registry presence.Provider
	hub      wsSender
}

func (i impl) Notify(userID string, data models.NotificationData) error {
	logger := log.
		WithField("user_id", userID).
		WithField("event_code", string(data.Code))
	rec := dbmodels.Notification{
		UserID: userID,
		Code:   data.Code,
		Title:  data.Title,
		Msg:    data.Msg,
		Link:   data.Link,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения уведомления")
	}
	if !i.registry.IsOnline(userID) {
		return nil
	}
	i.hub.SendMessage(wsmodels.ServerMessage{
		ToUserID: userID,
		Time:     time.Now().Format("02.01.2006 15:04:05"),
		Code:     string(data.Code),
		Title:    data.Title,
		Msg:      data.Msg,
		Link:     data.Link,
	})
	if err = i.store.MarkDelivered([]string{id}); err != nil {
		logger.WithError(err).Error("ошибка отметки отправленного уведомления")
	}
	return nil
}

func (i impl) List(userID string, filter notificationapimodels.NotificationFilter) (list []notificationapimodels.NotificationView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(userID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка уведомлений")
	}
	list = make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModelView())
	}
	return list, rowCount, nil
}

func (i impl) MarkRead(userID, id string) error {
	return i.store.MarkRead(userID, id)
}

func (i impl) MarkAllRead(userID string) error {
	return i.store.MarkAllRead(userID)
}

func (i impl) UnreadCount(userID string) (int64, error) {
	return i.store.UnreadCount(userID)
}
