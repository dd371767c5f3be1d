package connectionhub

import (
	"sync"

	"ppalink-backend/db"
	notificationstore "ppalink-backend/lib/notification/store"
	"ppalink-backend/lib/presence"
	wsmodels "ppalink-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn) (connID string)
	DeleteClient(userID, connID string)
	// SendMessage отправляет событие на все подключения пользователя.
	// Если пользователь офлайн — событие молча пропускается.
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
}

var Instance Provider

func Init(registry presence.Provider) {
	Instance = &impl{
		sessions: map[string]clientSession{},
		registry: registry,
		store:    notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mu       sync.Mutex
	sessions map[string]clientSession //map[connID]
	registry presence.Provider
	store    notificationstore.Provider
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) (connID string) {
	connID = uuid.New().String()
	sess := newSession(conn)
	i.mu.Lock()
	i.sessions[connID] = sess
	i.mu.Unlock()
	i.registry.Add(userID, connID)
	go i.sendDelayedMessages(userID)
	return connID
}

func (i *impl) DeleteClient(userID, connID string) {
	i.registry.Remove(userID, connID)
	i.mu.Lock()
	sess, ok := i.sessions[connID]
	if ok {
		delete(i.sessions, connID)
	}
	i.mu.Unlock()
	if !ok {
		return
	}
	// канал не закрываем: писатель завершается по контексту,
	// а конкурентный SendMessage не должен упасть на закрытом канале
	sess.stop()
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	for _, connID := range i.registry.Connections(msg.ToUserID) {
		i.mu.Lock()
		sess, ok := i.sessions[connID]
		if ok {
			select {
			case sess.sendCh <- msg:
			default:
				// буфер переполнен либо сессия уже остановлена,
				// событие дойдёт доотправкой при переподключении
			}
		}
		i.mu.Unlock()
	}
}

func (i *impl) SendClose(userID string) {
	for _, connID := range i.registry.Connections(userID) {
		i.mu.Lock()
		sess, ok := i.sessions[connID]
		i.mu.Unlock()
		if ok {
			sess.stop()
		}
	}
}

// sendDelayedMessages доотправляет накопленные в офлайне уведомления
func (i *impl) sendDelayedMessages(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.ListUndelivered(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка не отправленных событий")
		return
	}
	sendedIDs := []string{}
	for _, item := range list {
		if i.registry.IsOnline(userID) {
			msg := wsmodels.ServerMessage{
				ToUserID: userID,
				Time:     item.CreatedAt.Format("02.01.2006 15:04:05"),
				Code:     string(item.Code),
				Title:    item.Title,
				Msg:      item.Msg,
				Link:     item.Link,
			}
			i.SendMessage(msg)
			sendedIDs = append(sendedIDs, item.ID)
		}
	}
	if len(sendedIDs) > 0 {
		err = i.store.MarkDelivered(sendedIDs)
		if err != nil {
			logger.WithError(err).Error("ошибка отметки отправленных событий")
			return
		}
	}
}
