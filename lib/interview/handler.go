package interviewhandler

import (
	"time"

	"ppalink-backend/config"
	"ppalink-backend/db"
	applicationstore "ppalink-backend/lib/application/store"
	interviewstore "ppalink-backend/lib/interview/store"
	notificationhandler "ppalink-backend/lib/notification"
	agencymemberstore "ppalink-backend/lib/agency/member-store"
	connectionhub "ppalink-backend/lib/ws/hub/connection-hub"
	"ppalink-backend/models"
	interviewapimodels "ppalink-backend/models/api/interview"
	dbmodels "ppalink-backend/models/db"
	wsmodels "ppalink-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrApplicationNotFound — отклик не существует или вакансия не принадлежит агентству
	ErrApplicationNotFound = errors.New("отклик не найден")
	ErrApplicationFinal    = errors.New("отклик в финальном статусе, собеседование недоступно")
)

type Provider interface {
	// Schedule назначает собеседование: создаёт запись и переводит отклик
	// в статус INTERVIEW в одной транзакции, затем уведомляет кандидата
	// и онлайн-команду агентства. Повторный вызов создаёт новую запись.
	Schedule(agencyID, userID, applicationID string, data interviewapimodels.InterviewData) (view interviewapimodels.InterviewView, err error)
	ListByApplication(agencyID, candidateID, applicationID string) ([]interviewapimodels.InterviewView, error)
}

var Instance Provider

// txStores — хранилища, привязанные к одной транзакции
type txStores struct {
	interviews   interviewstore.Provider
	applications applicationstore.Provider
}

func NewHandler() {
	Instance = impl{
		applicationStore: applicationstore.NewInstance(db.DB),
		memberStore:      agencymemberstore.NewInstance(db.DB),
		notifier:         notificationhandler.Instance,
		hub:              hubSender{},
		inTx: func(fn func(s txStores) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(txStores{
					interviews:   interviewstore.NewInstance(tx),
					applications: applicationstore.NewInstance(tx),
				})
			})
		},
	}
}

type wsSender interface {
	SendMessage(msg wsmodels.ServerMessage)
}

type hubSender struct{}

func (hubSender) SendMessage(msg wsmodels.ServerMessage) {
	connectionhub.Instance.SendMessage(msg)
}

type impl struct {
	applicationStore applicationstore.Provider
	memberStore      agencymemberstore.Provider
	notifier         notificationhandler.Provider
	hub              wsSender
	inTx             func(fn func(s txStores) error) error
}

func (i impl) getLogger(agencyID, applicationID string) *log.Entry {
	return log.
		WithField("agency_id", agencyID).
		WithField("application_id", applicationID)
}

func (i impl) Schedule(agencyID, userID, applicationID string, data interviewapimodels.InterviewData) (view interviewapimodels.InterviewView, err error) {
	logger := i.getLogger(agencyID, applicationID)
	if err = data.Validate(); err != nil {
		return view, err
	}
	scheduledAt, err := data.GetScheduledAt()
	if err != nil {
		return view, err
	}
	rec, err := i.applicationStore.GetForAgency(applicationID, agencyID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return view, ErrApplicationNotFound
	}
	if rec.Status.IsFinal() {
		return view, ErrApplicationFinal
	}

	interviewRec := dbmodels.Interview{
		ApplicationID: rec.ID,
		ScheduledAt:   scheduledAt,
		Mode:          data.Mode,
		Location:      data.Location,
		Details:       data.Details,
	}
	err = i.inTx(func(s txStores) error {
		id, err := s.interviews.Create(interviewRec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания собеседования")
		}
		interviewRec.ID = id
		updMap := map[string]interface{}{
			"status": models.ApplicationStatusInterview,
		}
		if err = s.applications.Update(rec.ID, updMap); err != nil {
			return errors.Wrap(err, "ошибка обновления статуса отклика")
		}
		return nil
	})
	if err != nil {
		return view, err
	}
	logger.WithField("interview_id", interviewRec.ID).Info("назначено собеседование")

	// после коммита уведомления идут без гарантий, их ошибки не откатывают транзакцию
	i.notifyCandidate(logger, rec, scheduledAt)
	i.notifyAgencyTeam(logger, rec, agencyID, userID)
	return interviewRec.ToModelView(), nil
}

func (i impl) notifyCandidate(logger *log.Entry, rec *dbmodels.Application, scheduledAt time.Time) {
	if rec.Candidate == nil || rec.Position == nil || rec.Position.Agency == nil {
		logger.Error("не загружены связанные данные отклика, кандидат не уведомлён")
		return
	}
	link := config.Conf.App.PublicURL + "/applications/" + rec.ID
	data := models.GetNotifyInterviewScheduled(
		rec.Position.Agency.Name,
		rec.Position.Title,
		scheduledAt.Format("02.01.2006 15:04"),
		link,
	)
	if err := i.notifier.Notify(rec.Candidate.UserID, data); err != nil {
		logger.WithError(err).Error("ошибка уведомления кандидата о собеседовании")
	}
}

func (i impl) notifyAgencyTeam(logger *log.Entry, rec *dbmodels.Application, agencyID, userID string) {
	members, err := i.memberStore.ListByAgency(agencyID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения команды агентства")
		return
	}
	for _, member := range members {
		if member.UserID == userID {
			continue
		}
		i.hub.SendMessage(wsmodels.ServerMessage{
			ToUserID: member.UserID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Code:     "ApplicationUpdated",
			Msg:      "По отклику назначено собеседование",
			Data:     rec.ToModelView(),
		})
	}
}

func (i impl) ListByApplication(agencyID, candidateID, applicationID string) (list []interviewapimodels.InterviewView, err error) {
	var rec *dbmodels.Application
	if agencyID != "" {
		rec, err = i.applicationStore.GetForAgency(applicationID, agencyID)
	} else {
		rec, err = i.applicationStore.GetByID(applicationID)
		if err == nil && rec != nil && rec.CandidateID != candidateID {
			rec = nil
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return nil, ErrApplicationNotFound
	}
	recList, err := i.interviewStoreList(rec.ID)
	if err != nil {
		return nil, err
	}
	list = make([]interviewapimodels.InterviewView, 0, len(recList))
	for _, item := range recList {
		list = append(list, item.ToModelView())
	}
	return list, nil
}

func (i impl) interviewStoreList(applicationID string) ([]dbmodels.Interview, error) {
	var recList []dbmodels.Interview
	err := i.inTx(func(s txStores) error {
		var err error
		recList, err = s.interviews.ListByApplication(applicationID)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка собеседований")
	}
	return recList, nil
}
