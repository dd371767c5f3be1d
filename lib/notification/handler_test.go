package notificationhandler

import (
	"fmt"
	"testing"

	"ppalink-backend/lib/presence"
	"ppalink-backend/models"
	notificationapimodels "ppalink-backend/models/api/notification"
	dbmodels "ppalink-backend/models/db"
	wsmodels "ppalink-backend/models/ws"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	rows []dbmodels.Notification
}

func (f *fakeStore) Create(rec dbmodels.Notification) (string, error) {
	rec.ID = fmt.Sprintf("notification-%d", len(f.rows)+1)
	f.rows = append(f.rows, rec)
	return rec.ID, nil
}

func (f *fakeStore) List(userID string, filter notificationapimodels.NotificationFilter) ([]dbmodels.Notification, int64, error) {
	list := []dbmodels.Notification{}
	for _, rec := range f.rows {
		if rec.UserID != userID {
			continue
		}
		if filter.OnlyUnread && rec.IsRead {
			continue
		}
		list = append(list, rec)
	}
	return list, int64(len(list)), nil
}

func (f *fakeStore) ListUndelivered(userID string) ([]dbmodels.Notification, error) {
	list := []dbmodels.Notification{}
	for _, rec := range f.rows {
		if rec.UserID == userID && !rec.Delivered {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeStore) MarkDelivered(ids []string) error {
	for _, id := range ids {
		for idx := range f.rows {
			if f.rows[idx].ID == id {
				f.rows[idx].Delivered = true
			}
		}
	}
	return nil
}

func (f *fakeStore) MarkRead(userID, id string) error {
	for idx := range f.rows {
		if f.rows[idx].ID == id && f.rows[idx].UserID == userID {
			f.rows[idx].IsRead = true
		}
	}
	return nil
}

func (f *fakeStore) MarkAllRead(userID string) error {
	for idx := range f.rows {
		if f.rows[idx].UserID == userID {
			f.rows[idx].IsRead = true
		}
	}
	return nil
}

func (f *fakeStore) UnreadCount(userID string) (int64, error) {
	var count int64
	for _, rec := range f.rows {
		if rec.UserID == userID && !rec.IsRead {
			count++
		}
	}
	return count, nil
}

type fakeHub struct {
	messages []wsmodels.ServerMessage
}

func (f *fakeHub) SendMessage(msg wsmodels.ServerMessage) {
	f.messages = append(f.messages, msg)
}

func newTestHandler() (impl, *fakeStore, presence.Provider, *fakeHub) {
	store := &fakeStore{}
	registry := presence.NewRegistry()
	hub := &fakeHub{}
	return impl{
		store:    store,
		registry: registry,
		hub:      hub,
	}, store, registry, hub
}

func TestNotify(t *testing.T) {
	data := models.GetNotifyApplicationNew("Go-разработчик", "Иван Иванов", "http://localhost/app-1")

	t.Run("офлайн: запись сохраняется, пуш не уходит", func(t *testing.T) {
		handler, store, _, hub := newTestHandler()

		err := handler.Notify("user-1", data)
		require.NoError(t, err)
		require.Len(t, store.rows, 1)
		require.Equal(t, "user-1", store.rows[0].UserID)
		require.False(t, store.rows[0].Delivered)
		require.Empty(t, hub.messages)
	})

	t.Run("онлайн: ровно один пуш и отметка о доставке", func(t *testing.T) {
		handler, store, registry, hub := newTestHandler()
		registry.Add("user-1", "conn-1")

		err := handler.Notify("user-1", data)
		require.NoError(t, err)
		require.Len(t, store.rows, 1)
		require.True(t, store.rows[0].Delivered)
		require.Len(t, hub.messages, 1)
		require.Equal(t, "user-1", hub.messages[0].ToUserID)
		require.Equal(t, string(models.NotifyApplicationNew), hub.messages[0].Code)
		require.Contains(t, hub.messages[0].Msg, "Go-разработчик")
	})

	t.Run("пуш уходит только адресату", func(t *testing.T) {
		handler, _, registry, hub := newTestHandler()
		registry.Add("user-2", "conn-2")

		err := handler.Notify("user-1", data)
		require.NoError(t, err)
		require.Empty(t, hub.messages)
	})
}

func TestReadFlow(t *testing.T) {
	data := models.GetNotifyGeneric("тестовое уведомление")

	t.Run("счётчик непрочитанных и отметки", func(t *testing.T) {
		handler, _, _, _ := newTestHandler()
		require.NoError(t, handler.Notify("user-1", data))
		require.NoError(t, handler.Notify("user-1", data))
		require.NoError(t, handler.Notify("user-2", data))

		count, err := handler.UnreadCount("user-1")
		require.NoError(t, err)
		require.Equal(t, int64(2), count)

		list, rowCount, err := handler.List("user-1", notificationapimodels.NotificationFilter{OnlyUnread: true})
		require.NoError(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Len(t, list, 2)

		require.NoError(t, handler.MarkRead("user-1", list[0].ID))
		count, err = handler.UnreadCount("user-1")
		require.NoError(t, err)
		require.Equal(t, int64(1), count)

		require.NoError(t, handler.MarkAllRead("user-1"))
		count, err = handler.UnreadCount("user-1")
		require.NoError(t, err)
		require.Equal(t, int64(0), count)

		// чужие уведомления не затронуты
		count, err = handler.UnreadCount("user-2")
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
	})
}
