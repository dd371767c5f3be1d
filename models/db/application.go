package dbmodels

import (
	"ppalink-backend/models"
	applicationapimodels "ppalink-backend/models/api/application"

	"github.com/pkg/errors"
)

type Application struct {
	BaseModel
	CandidateID string            `gorm:"type:varchar(36);index:idx_application_candidate;uniqueIndex:idx_application_candidate_position"`
	Candidate   *CandidateProfile `gorm:"foreignKey:CandidateID"`
	PositionID  string            `gorm:"type:varchar(36);index:idx_application_position;uniqueIndex:idx_application_candidate_position"`
	Position    *Position         `gorm:"foreignKey:PositionID"`
	Status      models.ApplicationStatus `gorm:"type:varchar(50)"`
	CoverNote   string
	Notes       string // заметки рекрутеров, кандидату не видны
}

// IsAllowStatusChange проверяет переход статуса отклика агентством.
// Статус INTERVIEW выставляется только при назначении собеседования.
func (a Application) IsAllowStatusChange(newStatus models.ApplicationStatus) (bool, error) {
	if a.Status == newStatus {
		return false, nil
	}
	if a.Status.IsFinal() {
		return false, errors.New("смена статуса недоступна, отклик в финальном статусе")
	}
	switch newStatus {
	case models.ApplicationStatusReviewing:
		if a.Status != models.ApplicationStatusApplied {
			return false, errors.New("перевести на рассмотрение можно только новый отклик")
		}
	case models.ApplicationStatusOffer:
		if a.Status != models.ApplicationStatusReviewing && a.Status != models.ApplicationStatusInterview {
			return false, errors.New("оффер доступен только после рассмотрения или собеседования")
		}
	case models.ApplicationStatusRejected:
		// отказ доступен из любого нефинального статуса
	case models.ApplicationStatusInterview:
		return false, errors.New("статус INTERVIEW выставляется при назначении собеседования")
	default:
		return false, errors.New("неизвестный статус")
	}
	return true, nil
}

func (a Application) ToModelView() applicationapimodels.ApplicationView {
	view := applicationapimodels.ApplicationView{
		ID:          a.ID,
		CandidateID: a.CandidateID,
		PositionID:  a.PositionID,
		Status:      a.Status,
		CoverNote:   a.CoverNote,
		CreatedAt:   a.CreatedAt,
	}
	if a.Candidate != nil {
		view.Candidate = a.Candidate.ToModelView()
	}
	if a.Position != nil {
		view.PositionTitle = a.Position.Title
		if a.Position.Agency != nil {
			view.AgencyName = a.Position.Agency.Name
		}
	}
	return view
}
