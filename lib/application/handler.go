package applicationhandler

import (
	"bytes"

	"ppalink-backend/config"
	"ppalink-backend/db"
	agencymemberstore "ppalink-backend/lib/agency/member-store"
	applicationstore "ppalink-backend/lib/application/store"
	candidatestore "ppalink-backend/lib/candidate/store"
	xlsexport "ppalink-backend/lib/export/xls"
	notificationhandler "ppalink-backend/lib/notification"
	positionstore "ppalink-backend/lib/position/store"
	"ppalink-backend/models"
	applicationapimodels "ppalink-backend/models/api/application"
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrPositionNotFound = errors.New("вакансия не найдена")
	ErrPositionClosed   = errors.New("вакансия закрыта для откликов")
	ErrAlreadyApplied   = errors.New("отклик на вакансию уже отправлен")
	ErrNotFound         = errors.New("отклик не найден")
)

type Provider interface {
	Apply(candidateID string, data applicationapimodels.ApplyRequest) (applicationapimodels.ApplicationView, error)
	// ChangeStatus меняет статус отклика агентством и уведомляет кандидата.
	// Переход в INTERVIEW этим методом запрещён.
	ChangeStatus(agencyID, applicationID string, data applicationapimodels.StatusRequest) error
	GetForAgency(agencyID, applicationID string) (applicationapimodels.ApplicationView, error)
	Withdraw(candidateID, applicationID string) error
	ListMy(candidateID string) ([]applicationapimodels.ApplicationView, error)
	ListByPosition(agencyID, positionID string, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	// ExportByPosition формирует xlsx со всеми откликами по вакансии
	ExportByPosition(agencyID, positionID string) (fileName string, body *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          applicationstore.NewInstance(db.DB),
		positionStore:  positionstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		memberStore:    agencymemberstore.NewInstance(db.DB),
		notifier:       notificationhandler.Instance,
	}
}

type impl struct {
	store          applicationstore.Provider
	positionStore  positionstore.Provider
	candidateStore candidatestore.Provider
	memberStore    agencymemberstore.Provider
	notifier       notificationhandler.Provider
}

func (i impl) Apply(candidateID string, data applicationapimodels.ApplyRequest) (view applicationapimodels.ApplicationView, err error) {
	logger := log.
		WithField("candidate_id", candidateID).
		WithField("position_id", data.PositionID)
	if err = data.Validate(); err != nil {
		return view, err
	}
	position, err := i.positionStore.GetByID(data.PositionID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения вакансии")
	}
	if position == nil {
		return view, ErrPositionNotFound
	}
	if position.Status != models.PositionStatusOpen {
		return view, ErrPositionClosed
	}
	existed, err := i.store.GetByPositionAndCandidate(data.PositionID, candidateID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка проверки отклика")
	}
	if existed != nil {
		return view, ErrAlreadyApplied
	}
	rec := dbmodels.Application{
		CandidateID: candidateID,
		PositionID:  data.PositionID,
		Status:      models.ApplicationStatusApplied,
		CoverNote:   data.CoverNote,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания отклика")
	}
	logger.WithField("application_id", id).Info("создан отклик на вакансию")

	i.notifyAgencyNewApplication(logger, position, candidateID, id)
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		rec.ID = id
		return rec.ToModelView(), nil
	}
	return created.ToModelView(), nil
}

// notifyAgencyNewApplication уведомляет всех участников агентства о новом отклике
func (i impl) notifyAgencyNewApplication(logger *log.Entry, position *dbmodels.Position, candidateID, applicationID string) {
	candidate, err := i.candidateStore.GetByID(candidateID)
	if err != nil || candidate == nil || candidate.User == nil {
		logger.WithError(err).Error("не удалось получить профиль кандидата, агентство не уведомлено")
		return
	}
	members, err := i.memberStore.ListByAgency(position.AgencyID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения команды агентства")
		return
	}
	link := config.Conf.App.PublicURL + "/applications/" + applicationID
	data := models.GetNotifyApplicationNew(position.Title, candidate.User.GetFullName(), link)
	for _, member := range members {
		if err := i.notifier.Notify(member.UserID, data); err != nil {
			logger.WithError(err).Error("ошибка уведомления агентства о новом отклике")
		}
	}
}

func (i impl) ChangeStatus(agencyID, applicationID string, data applicationapimodels.StatusRequest) error {
	logger := log.
		WithField("agency_id", agencyID).
		WithField("application_id", applicationID)
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetForAgency(applicationID, agencyID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return ErrNotFound
	}
	ok, err := rec.IsAllowStatusChange(data.Status)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	updMap := map[string]interface{}{
		"status": data.Status,
	}
	if data.Notes != "" {
		updMap["notes"] = data.Notes
	}
	if err = i.store.Update(rec.ID, updMap); err != nil {
		return errors.Wrap(err, "ошибка обновления статуса отклика")
	}
	logger.WithField("status", data.Status).Info("изменён статус отклика")

	if rec.Candidate != nil && rec.Position != nil && rec.Position.Agency != nil {
		link := config.Conf.App.PublicURL + "/applications/" + rec.ID
		notifyData := models.GetNotifyApplicationStatus(rec.Position.Title, rec.Position.Agency.Name, data.Status.ToHuman(), link)
		if err := i.notifier.Notify(rec.Candidate.UserID, notifyData); err != nil {
			logger.WithError(err).Error("ошибка уведомления кандидата о смене статуса")
		}
	}
	return nil
}

func (i impl) GetForAgency(agencyID, applicationID string) (view applicationapimodels.ApplicationView, err error) {
	rec, err := i.store.GetForAgency(applicationID, agencyID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil {
		return view, ErrNotFound
	}
	return rec.ToModelView(), nil
}

func (i impl) Withdraw(candidateID, applicationID string) error {
	rec, err := i.store.GetByID(applicationID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения отклика")
	}
	if rec == nil || rec.CandidateID != candidateID {
		return ErrNotFound
	}
	if rec.Status.IsFinal() {
		return errors.New("отклик уже в финальном статусе")
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"status": models.ApplicationStatusWithdrawn,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка отзыва отклика")
	}
	return nil
}

func (i impl) ListMy(candidateID string) (list []applicationapimodels.ApplicationView, err error) {
	recList, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка откликов")
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModelView())
	}
	return list, nil
}

func (i impl) ListByPosition(agencyID, positionID string, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	position, err := i.positionStore.GetForAgency(positionID, agencyID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения вакансии")
	}
	if position == nil {
		return nil, 0, ErrPositionNotFound
	}
	recList, rowCount, err := i.store.ListByPosition(positionID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка откликов")
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModelView())
	}
	return list, rowCount, nil
}

func (i impl) ExportByPosition(agencyID, positionID string) (fileName string, body *bytes.Buffer, err error) {
	position, err := i.positionStore.GetForAgency(positionID, agencyID)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка получения вакансии")
	}
	if position == nil {
		return "", nil, ErrPositionNotFound
	}
	recList, err := i.store.ListAllByPosition(positionID)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка получения списка откликов")
	}
	body, err = xlsexport.Instance.ExportApplicationList(recList)
	if err != nil {
		return "", nil, err
	}
	return "applications.xlsx", body, nil
}
