package positionhandler

import (
	"ppalink-backend/db"
	positionstore "ppalink-backend/lib/position/store"
	"ppalink-backend/models"
	positionapimodels "ppalink-backend/models/api/position"
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("вакансия не найдена")

type Provider interface {
	Create(agencyID string, data positionapimodels.PositionData) (positionapimodels.PositionView, error)
	Get(agencyID, id string) (positionapimodels.PositionView, error)
	GetPublic(id string) (positionapimodels.PositionView, error)
	Update(agencyID, id string, data positionapimodels.PositionData) error
	SetStatus(agencyID, id string, data positionapimodels.StatusRequest) error
	Delete(agencyID, id string) error
	ListByAgency(agencyID string) ([]positionapimodels.PositionView, error)
	// ListPublic возвращает открытые вакансии для поиска кандидатами
	ListPublic(filter positionapimodels.PositionFilter) (list []positionapimodels.PositionView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: positionstore.NewInstance(db.DB),
	}
}

type impl struct {
	store positionstore.Provider
}

func (i impl) Create(agencyID string, data positionapimodels.PositionData) (view positionapimodels.PositionView, err error) {
	if err = data.Validate(); err != nil {
		return view, err
	}
	rec := dbmodels.Position{
		AgencyID:       agencyID,
		Title:          data.Title,
		Description:    data.Description,
		EmploymentType: data.EmploymentType,
		Location:       data.Location,
		SalaryMin:      data.SalaryMin,
		SalaryMax:      data.SalaryMax,
		Status:         models.PositionStatusOpen,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return view, errors.Wrap(err, "ошибка создания вакансии")
	}
	log.
		WithField("agency_id", agencyID).
		WithField("position_id", id).
		Info("создана вакансия")
	rec.ID = id
	return rec.ToModelView(), nil
}

func (i impl) Get(agencyID, id string) (view positionapimodels.PositionView, err error) {
	rec, err := i.store.GetForAgency(id, agencyID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return view, ErrNotFound
	}
	return rec.ToModelView(), nil
}

func (i impl) GetPublic(id string) (view positionapimodels.PositionView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil || rec.Status != models.PositionStatusOpen {
		return view, ErrNotFound
	}
	return rec.ToModelView(), nil
}

func (i impl) Update(agencyID, id string, data positionapimodels.PositionData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetForAgency(id, agencyID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return ErrNotFound
	}
	updMap := map[string]interface{}{
		"title":           data.Title,
		"description":     data.Description,
		"employment_type": data.EmploymentType,
		"location":        data.Location,
		"salary_min":      data.SalaryMin,
		"salary_max":      data.SalaryMax,
	}
	if err = i.store.Update(rec.ID, updMap); err != nil {
		return errors.Wrap(err, "ошибка обновления вакансии")
	}
	return nil
}

func (i impl) SetStatus(agencyID, id string, data positionapimodels.StatusRequest) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetForAgency(id, agencyID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return ErrNotFound
	}
	if rec.Status == data.Status {
		return nil
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"status": data.Status,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка смены статуса вакансии")
	}
	log.
		WithField("agency_id", agencyID).
		WithField("position_id", id).
		WithField("status", data.Status).
		Info("изменён статус вакансии")
	return nil
}

func (i impl) Delete(agencyID, id string) error {
	rec, err := i.store.GetForAgency(id, agencyID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения вакансии")
	}
	if rec == nil {
		return ErrNotFound
	}
	if err = i.store.Delete(id, agencyID); err != nil {
		return errors.Wrap(err, "ошибка удаления вакансии")
	}
	return nil
}

func (i impl) ListByAgency(agencyID string) (list []positionapimodels.PositionView, err error) {
	recList, err := i.store.ListByAgency(agencyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка вакансий")
	}
	list = make([]positionapimodels.PositionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModelView())
	}
	return list, nil
}

func (i impl) ListPublic(filter positionapimodels.PositionFilter) (list []positionapimodels.PositionView, rowCount int64, err error) {
	recList, rowCount, err := i.store.ListPublic(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка поиска вакансий")
	}
	list = make([]positionapimodels.PositionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModelView())
	}
	return list, rowCount, nil
}
