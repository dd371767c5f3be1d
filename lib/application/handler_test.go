package applicationhandler

import (
	"fmt"
	"testing"

	"ppalink-backend/config"
	"ppalink-backend/models"
	applicationapimodels "ppalink-backend/models/api/application"
	notificationapimodels "ppalink-backend/models/api/notification"
	positionapimodels "ppalink-backend/models/api/position"
	dbmodels "ppalink-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeAppStore struct {
	rows []*dbmodels.Application
}

func (f *fakeAppStore) Create(rec dbmodels.Application) (string, error) {
	rec.ID = fmt.Sprintf("app-%d", len(f.rows)+1)
	f.rows = append(f.rows, &rec)
	return rec.ID, nil
}

func (f *fakeAppStore) GetByID(id string) (*dbmodels.Application, error) {
	for _, rec := range f.rows {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAppStore) GetForAgency(id, agencyID string) (*dbmodels.Application, error) {
	for _, rec := range f.rows {
		if rec.ID == id && rec.Position != nil && rec.Position.AgencyID == agencyID {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAppStore) GetByPositionAndCandidate(positionID, candidateID string) (*dbmodels.Application, error) {
	for _, rec := range f.rows {
		if rec.PositionID == positionID && rec.CandidateID == candidateID {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAppStore) ListByCandidate(candidateID string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	for _, rec := range f.rows {
		if rec.CandidateID == candidateID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeAppStore) ListByPosition(positionID string, filter applicationapimodels.ApplicationFilter) ([]dbmodels.Application, int64, error) {
	list := []dbmodels.Application{}
	for _, rec := range f.rows {
		if rec.PositionID != positionID {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		list = append(list, *rec)
	}
	return list, int64(len(list)), nil
}

func (f *fakeAppStore) ListAllByPosition(positionID string) ([]dbmodels.Application, error) {
	list, _, err := f.ListByPosition(positionID, applicationapimodels.ApplicationFilter{})
	return list, err
}

func (f *fakeAppStore) Update(id string, updMap map[string]interface{}) error {
	for _, rec := range f.rows {
		if rec.ID != id {
			continue
		}
		if status, ok := updMap["status"].(models.ApplicationStatus); ok {
			rec.Status = status
		}
		if notes, ok := updMap["notes"].(string); ok {
			rec.Notes = notes
		}
	}
	return nil
}

type fakePositionStore struct {
	positions map[string]*dbmodels.Position
}

func (f *fakePositionStore) Create(rec dbmodels.Position) (string, error) { return "", nil }

func (f *fakePositionStore) GetByID(id string) (*dbmodels.Position, error) {
	return f.positions[id], nil
}

func (f *fakePositionStore) GetForAgency(id, agencyID string) (*dbmodels.Position, error) {
	rec, ok := f.positions[id]
	if !ok || rec.AgencyID != agencyID {
		return nil, nil
	}
	return rec, nil
}

func (f *fakePositionStore) ListByAgency(agencyID string) ([]dbmodels.Position, error) {
	return nil, nil
}

func (f *fakePositionStore) ListPublic(filter positionapimodels.PositionFilter) ([]dbmodels.Position, int64, error) {
	return nil, 0, nil
}

func (f *fakePositionStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakePositionStore) Delete(id, agencyID string) error { return nil }

type fakeCandidateStore struct {
	profiles map[string]*dbmodels.CandidateProfile
}

func (f *fakeCandidateStore) Create(rec dbmodels.CandidateProfile) (string, error) { return "", nil }

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.CandidateProfile, error) {
	return f.profiles[id], nil
}

func (f *fakeCandidateStore) GetByUserID(userID string) (*dbmodels.CandidateProfile, error) {
	return nil, nil
}

func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error { return nil }

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

func newTestHandler() (impl, *fakeAppStore, *fakePositionStore, *fakeCandidateStore, *fakeMemberStore, *fakeNotifier) {
	config.Conf = new(config.Configuration)
	config.Conf.App.PublicURL = "http://localhost:3000"

	appStore := &fakeAppStore{}
	positionStore := &fakePositionStore{positions: map[string]*dbmodels.Position{}}
	candidateStore := &fakeCandidateStore{profiles: map[string]*dbmodels.CandidateProfile{}}
	memberStore := &fakeMemberStore{}
	notifier := &fakeNotifier{}
	handler := impl{
		store:          appStore,
		positionStore:  positionStore,
		candidateStore: candidateStore,
		memberStore:    memberStore,
		notifier:       notifier,
	}
	return handler, appStore, positionStore, candidateStore, memberStore, notifier
}

func openPosition(id, agencyID string) *dbmodels.Position {
	rec := &dbmodels.Position{
		AgencyID: agencyID,
		Title:    "Go-разработчик",
		Status:   models.PositionStatusOpen,
		Agency:   &dbmodels.Agency{Name: "Рога и Копыта"},
	}
	rec.ID = id
	return rec
}

func candidateProfile(id, userID string) *dbmodels.CandidateProfile {
	rec := &dbmodels.CandidateProfile{
		UserID: userID,
		User:   &dbmodels.User{FirstName: "Иван", LastName: "Иванов"},
	}
	rec.ID = id
	return rec
}

func TestApply(t *testing.T) {
	t.Run("отклик создаётся, команда агентства уведомляется", func(t *testing.T) {
		handler, appStore, positionStore, candidateStore, memberStore, notifier := newTestHandler()
		positionStore.positions["position-1"] = openPosition("position-1", "agency-1")
		candidateStore.profiles["candidate-1"] = candidateProfile("candidate-1", "candidate-user-1")
		memberStore.members = []dbmodels.AgencyMember{
			{AgencyID: "agency-1", UserID: "user-1"},
			{AgencyID: "agency-1", UserID: "user-2"},
		}

		view, err := handler.Apply("candidate-1", applicationapimodels.ApplyRequest{PositionID: "position-1"})
		require.NoError(t, err)
		require.NotEmpty(t, view.ID)
		require.Equal(t, models.ApplicationStatusApplied, view.Status)
		require.Len(t, appStore.rows, 1)

		require.Len(t, notifier.sent, 2)
		require.Equal(t, models.NotifyApplicationNew, notifier.sent[0].Data.Code)
		require.Contains(t, notifier.sent[0].Data.Msg, "Иван Иванов")
	})

	t.Run("закрытая вакансия недоступна для отклика", func(t *testing.T) {
		handler, appStore, positionStore, _, _, _ := newTestHandler()
		position := openPosition("position-1", "agency-1")
		position.Status = models.PositionStatusClosed
		positionStore.positions["position-1"] = position

		_, err := handler.Apply("candidate-1", applicationapimodels.ApplyRequest{PositionID: "position-1"})
		require.ErrorIs(t, err, ErrPositionClosed)
		require.Empty(t, appStore.rows)
	})

	t.Run("повторный отклик отклоняется", func(t *testing.T) {
		handler, appStore, positionStore, candidateStore, _, _ := newTestHandler()
		positionStore.positions["position-1"] = openPosition("position-1", "agency-1")
		candidateStore.profiles["candidate-1"] = candidateProfile("candidate-1", "candidate-user-1")

		_, err := handler.Apply("candidate-1", applicationapimodels.ApplyRequest{PositionID: "position-1"})
		require.NoError(t, err)
		_, err = handler.Apply("candidate-1", applicationapimodels.ApplyRequest{PositionID: "position-1"})
		require.ErrorIs(t, err, ErrAlreadyApplied)
		require.Len(t, appStore.rows, 1)
	})

	t.Run("несуществующая вакансия", func(t *testing.T) {
		handler, _, _, _, _, _ := newTestHandler()
		_, err := handler.Apply("candidate-1", applicationapimodels.ApplyRequest{PositionID: "position-404"})
		require.ErrorIs(t, err, ErrPositionNotFound)
	})
}

func TestChangeStatus(t *testing.T) {
	seed := func(handler impl, appStore *fakeAppStore, positionStore *fakePositionStore, candidateStore *fakeCandidateStore) string {
		positionStore.positions["position-1"] = openPosition("position-1", "agency-1")
		candidateStore.profiles["candidate-1"] = candidateProfile("candidate-1", "candidate-user-1")
		view, err := handler.Apply("candidate-1", applicationapimodels.ApplyRequest{PositionID: "position-1"})
		if err != nil {
			panic(err)
		}
		rec, _ := appStore.GetByID(view.ID)
		rec.Position = positionStore.positions["position-1"]
		rec.Candidate = candidateStore.profiles["candidate-1"]
		return view.ID
	}

	t.Run("смена статуса уведомляет кандидата", func(t *testing.T) {
		handler, appStore, positionStore, candidateStore, _, notifier := newTestHandler()
		id := seed(handler, appStore, positionStore, candidateStore)
		notifier.sent = nil

		err := handler.ChangeStatus("agency-1", id, applicationapimodels.StatusRequest{Status: models.ApplicationStatusReviewing})
		require.NoError(t, err)
		rec, _ := appStore.GetByID(id)
		require.Equal(t, models.ApplicationStatusReviewing, rec.Status)

		require.Len(t, notifier.sent, 1)
		require.Equal(t, "candidate-user-1", notifier.sent[0].UserID)
		require.Equal(t, models.NotifyApplicationStatus, notifier.sent[0].Data.Code)
	})

	t.Run("чужое агентство не видит отклик", func(t *testing.T) {
		handler, appStore, positionStore, candidateStore, _, _ := newTestHandler()
		id := seed(handler, appStore, positionStore, candidateStore)

		err := handler.ChangeStatus("agency-2", id, applicationapimodels.StatusRequest{Status: models.ApplicationStatusReviewing})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("перевод в INTERVIEW сменой статуса запрещён", func(t *testing.T) {
		handler, appStore, positionStore, candidateStore, _, notifier := newTestHandler()
		id := seed(handler, appStore, positionStore, candidateStore)
		notifier.sent = nil

		err := handler.ChangeStatus("agency-1", id, applicationapimodels.StatusRequest{Status: models.ApplicationStatusInterview})
		require.Error(t, err)
		rec, _ := appStore.GetByID(id)
		require.Equal(t, models.ApplicationStatusApplied, rec.Status)
		require.Empty(t, notifier.sent)
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("кандидат отзывает свой отклик", func(t *testing.T) {
		handler, appStore, positionStore, candidateStore, _, _ := newTestHandler()
		positionStore.positions["position-1"] = openPosition("position-1", "agency-1")
		candidateStore.profiles["candidate-1"] = candidateProfile("candidate-1", "candidate-user-1")
		view, err := handler.Apply("candidate-1", applicationapimodels.ApplyRequest{PositionID: "position-1"})
		require.NoError(t, err)

		require.NoError(t, handler.Withdraw("candidate-1", view.ID))
		rec, _ := appStore.GetByID(view.ID)
		require.Equal(t, models.ApplicationStatusWithdrawn, rec.Status)

		// повторный отзыв финального отклика невозможен
		require.Error(t, handler.Withdraw("candidate-1", view.ID))
	})

	t.Run("чужой отклик отозвать нельзя", func(t *testing.T) {
		handler, _, positionStore, candidateStore, _, _ := newTestHandler()
		positionStore.positions["position-1"] = openPosition("position-1", "agency-1")
		candidateStore.profiles["candidate-1"] = candidateProfile("candidate-1", "candidate-user-1")
		view, err := handler.Apply("candidate-1", applicationapimodels.ApplyRequest{PositionID: "position-1"})
		require.NoError(t, err)

		require.ErrorIs(t, handler.Withdraw("candidate-2", view.ID), ErrNotFound)
	})
}
