package candidatehandler

import (
	"ppalink-backend/db"
	candidatestore "ppalink-backend/lib/candidate/store"
	pdfexport "ppalink-backend/lib/export/pdf"
	candidateapimodels "ppalink-backend/models/api/candidate"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("профиль кандидата не найден")

type Provider interface {
	Get(candidateID string) (candidateapimodels.ProfileView, error)
	Update(candidateID string, data candidateapimodels.ProfileData) error
	// ExportPDF формирует анкету кандидата для выгрузки агентством
	ExportPDF(candidateID string) (fileName string, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: candidatestore.NewInstance(db.DB),
	}
}

type impl struct {
	store candidatestore.Provider
}

func (i impl) Get(candidateID string) (view candidateapimodels.ProfileView, err error) {
	rec, err := i.store.GetByID(candidateID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения профиля кандидата")
	}
	if rec == nil {
		return view, ErrNotFound
	}
	return rec.ToModelView(), nil
}

func (i impl) Update(candidateID string, data candidateapimodels.ProfileData) error {
	rec, err := i.store.GetByID(candidateID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения профиля кандидата")
	}
	if rec == nil {
		return ErrNotFound
	}
	updMap := map[string]interface{}{
		"headline":      data.Headline,
		"summary":       data.Summary,
		"skills":        data.Skills,
		"location":      data.Location,
		"salary":        data.Salary,
		"linkedin_url":  data.LinkedinURL,
		"portfolio_url": data.PortfolioURL,
	}
	if err = i.store.Update(candidateID, updMap); err != nil {
		return errors.Wrap(err, "ошибка обновления профиля кандидата")
	}
	return nil
}

func (i impl) ExportPDF(candidateID string) (fileName string, body []byte, err error) {
	view, err := i.Get(candidateID)
	if err != nil {
		return "", nil, err
	}
	body, err = pdfexport.GenerateProfile(view)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка формирования анкеты кандидата")
	}
	return "profile.pdf", body, nil
}
