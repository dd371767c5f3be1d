package connectionhub

import (
	"fmt"
	"sync"
	"testing"

	"ppalink-backend/lib/presence"
	notificationapimodels "ppalink-backend/models/api/notification"
	dbmodels "ppalink-backend/models/db"
	wsmodels "ppalink-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"
)

type fakeNotificationStore struct{}

func (fakeNotificationStore) Create(rec dbmodels.Notification) (string, error) { return "", nil }
func (fakeNotificationStore) List(userID string, filter notificationapimodels.NotificationFilter) ([]dbmodels.Notification, int64, error) {
	return nil, 0, nil
}
func (fakeNotificationStore) ListUndelivered(userID string) ([]dbmodels.Notification, error) {
	return nil, nil
}
func (fakeNotificationStore) MarkDelivered(ids []string) error         { return nil }
func (fakeNotificationStore) MarkRead(userID, id string) error         { return nil }
func (fakeNotificationStore) MarkAllRead(userID string) error          { return nil }
func (fakeNotificationStore) UnreadCount(userID string) (int64, error) { return 0, nil }

func newTestHub() *impl {
	return &impl{
		sessions: map[string]clientSession{},
		registry: presence.NewRegistry(),
		store:    fakeNotificationStore{},
	}
}

func TestHub(t *testing.T) {
	t.Run("отправка после отключения молча пропускается", func(t *testing.T) {
		hub := newTestHub()
		connID := hub.AddClient("user-1", &websocket.Conn{})
		hub.DeleteClient("user-1", connID)
		require.NotPanics(t, func() {
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "user-1", Msg: "после отключения"})
		})
		require.False(t, hub.registry.IsOnline("user-1"))
	})

	t.Run("повторное отключение безопасно", func(t *testing.T) {
		hub := newTestHub()
		connID := hub.AddClient("user-1", &websocket.Conn{})
		require.NotPanics(t, func() {
			hub.DeleteClient("user-1", connID)
			hub.DeleteClient("user-1", connID)
		})
	})

	t.Run("отключение не гонится с отправкой", func(t *testing.T) {
		hub := newTestHub()
		wg := sync.WaitGroup{}
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				connID := hub.AddClient("user-1", &websocket.Conn{})
				hub.DeleteClient("user-1", connID)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				hub.SendMessage(wsmodels.ServerMessage{
					ToUserID: "user-1",
					Msg:      fmt.Sprintf("событие %d", j),
				})
			}
		}()
		wg.Wait()
		require.False(t, hub.registry.IsOnline("user-1"))
		hub.mu.Lock()
		require.Empty(t, hub.sessions)
		hub.mu.Unlock()
	})
}
