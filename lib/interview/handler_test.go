package interviewhandler

import (
	"fmt"
	"testing"
	"time"

	"ppalink-backend/config"
	"ppalink-backend/models"
	applicationapimodels "ppalink-backend/models/api/application"
	interviewapimodels "ppalink-backend/models/api/interview"
	notificationapimodels "ppalink-backend/models/api/notification"
	dbmodels "ppalink-backend/models/db"
	wsmodels "ppalink-backend/models/ws"

	"github.com/stretchr/testify/require"
)

type fakeApplicationStore struct {
	apps map[string]*dbmodels.Application // key: id + "/" + agencyID
}

func (f *fakeApplicationStore) Create(rec dbmodels.Application) (string, error) { return "", nil }

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	for _, rec := range f.apps {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationStore) GetForAgency(id, agencyID string) (*dbmodels.Application, error) {
	return f.apps[id+"/"+agencyID], nil
}

func (f *fakeApplicationStore) GetByPositionAndCandidate(positionID, candidateID string) (*dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByCandidate(candidateID string) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByPosition(positionID string, filter applicationapimodels.ApplicationFilter) ([]dbmodels.Application, int64, error) {
	return nil, 0, nil
}

func (f *fakeApplicationStore) ListAllByPosition(positionID string) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error { return nil }

type fakeInterviewStore struct {
	created []dbmodels.Interview
}

func (f *fakeInterviewStore) Create(rec dbmodels.Interview) (string, error) {
	rec.ID = fmt.Sprintf("interview-%d", len(f.created)+1)
	f.created = append(f.created, rec)
	return rec.ID, nil
}

func (f *fakeInterviewStore) ListByApplication(applicationID string) ([]dbmodels.Interview, error) {
	list := []dbmodels.Interview{}
	for _, rec := range f.created {
		if rec.ApplicationID == applicationID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeTxApplications struct {
	fakeApplicationStore
	statusUpdates map[string]models.ApplicationStatus
}

func (f *fakeTxApplications) Update(id string, updMap map[string]interface{}) error {
	if status, ok := updMap["status"].(models.ApplicationStatus); ok {
		f.statusUpdates[id] = status
	}
	return nil
}

type fakeMemberStore struct {
	members []dbmodels.AgencyMember
}

func (f *fakeMemberStore) Create(rec dbmodels.AgencyMember) (string, error) { return "", nil }

func (f *fakeMemberStore) ListByAgency(agencyID string) ([]dbmodels.AgencyMember, error) {
	list := []dbmodels.AgencyMember{}
	for _, rec := range f.members {
		if rec.AgencyID == agencyID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeMemberStore) GetByUser(userID string) (*dbmodels.AgencyMember, error) { return nil, nil }

func (f *fakeMemberStore) Delete(agencyID, memberID string) error { return nil }

type fakeNotifier struct {
	sent []struct {
		UserID string
		Data   models.NotificationData
	}
}

func (f *fakeNotifier) Notify(userID string, data models.NotificationData) error {
	f.sent = append(f.sent, struct {
		UserID string
		Data   models.NotificationData
	}{userID, data})
	return nil
}

func (f *fakeNotifier) List(userID string, filter notificationapimodels.NotificationFilter) ([]notificationapimodels.NotificationView, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotifier) MarkRead(userID, id string) error { return nil }

func (f *fakeNotifier) MarkAllRead(userID string) error { return nil }

func (f *fakeNotifier) UnreadCount(userID string) (int64, error) { return 0, nil }

type fakeHub struct {
	messages []wsmodels.ServerMessage
}

func (f *fakeHub) SendMessage(msg wsmodels.ServerMessage) {
	f.messages = append(f.messages, msg)
}

func newTestEnv() (impl, *fakeApplicationStore, *fakeInterviewStore, *fakeTxApplications, *fakeMemberStore, *fakeNotifier, *fakeHub) {
	config.Conf = new(config.Configuration)
	config.Conf.App.PublicURL = "http://localhost:3000"

	appStore := &fakeApplicationStore{apps: map[string]*dbmodels.Application{}}
	interviewStore := &fakeInterviewStore{}
	txApps := &fakeTxApplications{statusUpdates: map[string]models.ApplicationStatus{}}
	memberStore := &fakeMemberStore{}
	notifier := &fakeNotifier{}
	hub := &fakeHub{}

	handler := impl{
		applicationStore: appStore,
		memberStore:      memberStore,
		notifier:         notifier,
		hub:              hub,
		inTx: func(fn func(s txStores) error) error {
			return fn(txStores{
				interviews:   interviewStore,
				applications: txApps,
			})
		},
	}
	return handler, appStore, interviewStore, txApps, memberStore, notifier, hub
}

func makeApplication(id, agencyID string) *dbmodels.Application {
	rec := &dbmodels.Application{
		CandidateID: "candidate-1",
		PositionID:  "position-1",
		Status:      models.ApplicationStatusReviewing,
		Candidate: &dbmodels.CandidateProfile{
			UserID: "candidate-user-1",
		},
		Position: &dbmodels.Position{
			AgencyID: agencyID,
			Title:    "Go-разработчик",
			Agency: &dbmodels.Agency{
				Name: "Рога и Копыта",
			},
		},
	}
	rec.ID = id
	return rec
}

func validData() interviewapimodels.InterviewData {
	return interviewapimodels.InterviewData{
		ScheduledAt: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		Mode:        models.InterviewModeRemote,
		Location:    "https://meet.example.com/room",
	}
}

func TestSchedule(t *testing.T) {
	t.Run("чужой отклик не даёт назначить собеседование", func(t *testing.T) {
		handler, appStore, interviewStore, txApps, _, notifier, hub := newTestEnv()
		appStore.apps["app-1/agency-1"] = makeApplication("app-1", "agency-1")

		_, err := handler.Schedule("agency-2", "user-1", "app-1", validData())
		require.ErrorIs(t, err, ErrApplicationNotFound)
		require.Empty(t, interviewStore.created)
		require.Empty(t, txApps.statusUpdates)
		require.Empty(t, notifier.sent)
		require.Empty(t, hub.messages)
	})

	t.Run("успешное назначение создаёт запись и переводит отклик в INTERVIEW", func(t *testing.T) {
		handler, appStore, interviewStore, txApps, _, notifier, _ := newTestEnv()
		appStore.apps["app-1/agency-1"] = makeApplication("app-1", "agency-1")

		view, err := handler.Schedule("agency-1", "user-1", "app-1", validData())
		require.NoError(t, err)
		require.NotEmpty(t, view.ID)
		require.Len(t, interviewStore.created, 1)
		require.Equal(t, "app-1", interviewStore.created[0].ApplicationID)
		require.Equal(t, models.ApplicationStatusInterview, txApps.statusUpdates["app-1"])

		require.Len(t, notifier.sent, 1)
		require.Equal(t, "candidate-user-1", notifier.sent[0].UserID)
		require.Equal(t, models.NotifyInterviewScheduled, notifier.sent[0].Data.Code)
		require.Contains(t, notifier.sent[0].Data.Msg, "Рога и Копыта")
		require.Contains(t, notifier.sent[0].Data.Msg, "Go-разработчик")
	})

	t.Run("финальный отклик нельзя перевести в собеседование", func(t *testing.T) {
		handler, appStore, interviewStore, txApps, _, notifier, hub := newTestEnv()
		rec := makeApplication("app-1", "agency-1")
		rec.Status = models.ApplicationStatusRejected
		appStore.apps["app-1/agency-1"] = rec

		_, err := handler.Schedule("agency-1", "user-1", "app-1", validData())
		require.ErrorIs(t, err, ErrApplicationFinal)
		require.Empty(t, interviewStore.created)
		require.Empty(t, txApps.statusUpdates)
		require.Empty(t, notifier.sent)
		require.Empty(t, hub.messages)
	})

	t.Run("повторное назначение создаёт новую запись", func(t *testing.T) {
		handler, appStore, interviewStore, _, _, _, _ := newTestEnv()
		appStore.apps["app-1/agency-1"] = makeApplication("app-1", "agency-1")

		_, err := handler.Schedule("agency-1", "user-1", "app-1", validData())
		require.NoError(t, err)
		_, err = handler.Schedule("agency-1", "user-1", "app-1", validData())
		require.NoError(t, err)
		require.Len(t, interviewStore.created, 2)
	})

	t.Run("команда агентства получает пуш, кроме инициатора", func(t *testing.T) {
		handler, appStore, _, _, memberStore, _, hub := newTestEnv()
		appStore.apps["app-1/agency-1"] = makeApplication("app-1", "agency-1")
		memberStore.members = []dbmodels.AgencyMember{
			{AgencyID: "agency-1", UserID: "user-1"},
			{AgencyID: "agency-1", UserID: "user-2"},
			{AgencyID: "agency-1", UserID: "user-3"},
		}

		_, err := handler.Schedule("agency-1", "user-1", "app-1", validData())
		require.NoError(t, err)
		require.Len(t, hub.messages, 2)
		recipients := []string{hub.messages[0].ToUserID, hub.messages[1].ToUserID}
		require.ElementsMatch(t, []string{"user-2", "user-3"}, recipients)
	})

	t.Run("невалидные данные отклоняются до обращения к БД", func(t *testing.T) {
		handler, appStore, interviewStore, _, _, _, _ := newTestEnv()
		appStore.apps["app-1/agency-1"] = makeApplication("app-1", "agency-1")

		data := validData()
		data.ScheduledAt = "вчера"
		_, err := handler.Schedule("agency-1", "user-1", "app-1", data)
		require.Error(t, err)
		require.Empty(t, interviewStore.created)

		data = validData()
		data.Mode = models.InterviewModeInPerson
		data.Location = " "
		_, err = handler.Schedule("agency-1", "user-1", "app-1", data)
		require.Error(t, err)
		require.Empty(t, interviewStore.created)
	})
}

func TestListByApplication(t *testing.T) {
	t.Run("кандидат видит только свои собеседования", func(t *testing.T) {
		handler, appStore, _, _, _, _, _ := newTestEnv()
		appStore.apps["app-1/agency-1"] = makeApplication("app-1", "agency-1")

		_, err := handler.Schedule("agency-1", "user-1", "app-1", validData())
		require.NoError(t, err)

		list, err := handler.ListByApplication("", "candidate-1", "app-1")
		require.NoError(t, err)
		require.Len(t, list, 1)

		_, err = handler.ListByApplication("", "candidate-2", "app-1")
		require.ErrorIs(t, err, ErrApplicationNotFound)
	})
}
