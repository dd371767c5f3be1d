package messagehandler

import (
	"ppalink-backend/config"
	"ppalink-backend/db"
	agencymemberstore "ppalink-backend/lib/agency/member-store"
	applicationstore "ppalink-backend/lib/application/store"
	messagestore "ppalink-backend/lib/message/store"
	notificationhandler "ppalink-backend/lib/notification"
	usersstore "ppalink-backend/lib/users/store"
	"ppalink-backend/models"
	messageapimodels "ppalink-backend/models/api/message"
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrApplicationNotFound = errors.New("отклик не найден")

type Provider interface {
	// Send отправляет сообщение по отклику. Доступ есть у кандидата-автора
	// отклика и у сотрудников агентства, владеющего вакансией.
	Send(userID, agencyID, candidateID, applicationID string, data messageapimodels.SendRequest) (messageapimodels.MessageView, error)
	// List возвращает переписку и помечает входящие сообщения прочитанными
	List(userID, agencyID, candidateID, applicationID string) ([]messageapimodels.MessageView, error)
	UnreadCount(userID, agencyID, candidateID string) (int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            messagestore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		memberStore:      agencymemberstore.NewInstance(db.DB),
		usersStore:       usersstore.NewInstance(db.DB),
		notifier:         notificationhandler.Instance,
	}
}

type impl struct {
	store            messagestore.Provider
	applicationStore applicationstore.Provider
	memberStore      agencymemberstore.Provider
	usersStore       usersstore.Provider
	notifier         notificationhandler.Provider
}

// getApplication возвращает отклик только если участник имеет к нему доступ
func (i impl) getApplication(agencyID, candidateID, applicationID string) (*dbmodels.Application, error) {
	if agencyID != "" {
		return i.applicationStore.GetForAgency(applicationID, agencyID)
	}
	rec, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return nil, err
	}
	if rec != nil && rec.CandidateID != candidateID {
		return nil, nil
	}
	return rec, nil
}

func (i impl) Send(userID, agencyID, candidateID, applicationID string, data messageapimodels.SendRequest) (view messageapimodels.MessageView, err error) {
	logger := log.
		WithField("user_id", userID).
		WithField("application_id", applicationID)
	if err = data.Validate(); err != nil {
		return view, err
	}
	rec, err := i.getApplication(agencyID, candidateID, applicationID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return view, ErrApplicationNotFound
	}
	msgRec := dbmodels.Message{
		ApplicationID: rec.ID,
		FromUserID:    userID,
		Body:          data.Body,
	}
	id, err := i.store.Create(msgRec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка сохранения сообщения")
	}
	msgRec.ID = id

	i.notifyRecipients(logger, rec, userID, agencyID)

	sender, err := i.usersStore.GetByID(userID)
	if err == nil && sender != nil {
		msgRec.FromUser = sender
	}
	return msgRec.ToModelView(), nil
}

// notifyRecipients уведомляет вторую сторону переписки
func (i impl) notifyRecipients(logger *log.Entry, rec *dbmodels.Application, senderUserID, senderAgencyID string) {
	positionTitle := ""
	if rec.Position != nil {
		positionTitle = rec.Position.Title
	}
	sender, err := i.usersStore.GetByID(senderUserID)
	if err != nil || sender == nil {
		logger.WithError(err).Error("не удалось получить отправителя, уведомление не отправлено")
		return
	}
	link := config.Conf.App.PublicURL + "/applications/" + rec.ID
	data := models.GetNotifyNewMessage(sender.GetFullName(), positionTitle, link)

	if senderAgencyID != "" {
		// пишет агентство — уведомляем кандидата
		if rec.Candidate == nil {
			return
		}
		if err := i.notifier.Notify(rec.Candidate.UserID, data); err != nil {
			logger.WithError(err).Error("ошибка уведомления кандидата о сообщении")
		}
		return
	}
	// пишет кандидат — уведомляем команду агентства
	if rec.Position == nil {
		return
	}
	members, err := i.memberStore.ListByAgency(rec.Position.AgencyID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения команды агентства")
		return
	}
	for _, member := range members {
		if err := i.notifier.Notify(member.UserID, data); err != nil {
			logger.WithError(err).Error("ошибка уведомления агентства о сообщении")
		}
	}
}

func (i impl) List(userID, agencyID, candidateID, applicationID string) (list []messageapimodels.MessageView, err error) {
	rec, err := i.getApplication(agencyID, candidateID, applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return nil, ErrApplicationNotFound
	}
	recList, err := i.store.ListByApplication(rec.ID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения переписки")
	}
	if err := i.store.MarkRead(rec.ID, userID); err != nil {
		log.WithField("application_id", rec.ID).WithError(err).Error("не удалось пометить сообщения прочитанными")
	}
	list = make([]messageapimodels.MessageView, 0, len(recList))
	for _, item := range recList {
		list = append(list, item.ToModelView())
	}
	return list, nil
}

func (i impl) UnreadCount(userID, agencyID, candidateID string) (int64, error) {
	if agencyID != "" {
		return i.store.UnreadCountForAgency(agencyID, userID)
	}
	return i.store.UnreadCountForCandidate(candidateID, userID)
}
