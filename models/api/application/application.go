package applicationapimodels

import (
	"strings"
	"time"

	"ppalink-backend/models"
	apimodels "ppalink-backend/models/api"
	candidateapimodels "ppalink-backend/models/api/candidate"

	"github.com/pkg/errors"
)

type ApplyRequest struct {
	PositionID string `json:"position_id"`
	CoverNote  string `json:"cover_note"`
}

func (r ApplyRequest) Validate() error {
	if strings.TrimSpace(r.PositionID) == "" {
		return errors.New("не указан идентификатор вакансии")
	}
	return nil
}

type ApplicationView struct {
	ID            string                          `json:"id"`
	CandidateID   string                          `json:"candidate_id"`
	PositionID    string                          `json:"position_id"`
	PositionTitle string                          `json:"position_title,omitempty"`
	AgencyName    string                          `json:"agency_name,omitempty"`
	Status        models.ApplicationStatus        `json:"status"`
	CoverNote     string                          `json:"cover_note,omitempty"`
	Candidate     candidateapimodels.ProfileView  `json:"candidate,omitempty"`
	CreatedAt     time.Time                       `json:"created_at"`
}

type ApplicationFilter struct {
	apimodels.Pagination
	Status models.ApplicationStatus `json:"status"`
}

type StatusRequest struct {
	Status models.ApplicationStatus `json:"status"`
	Notes  string                   `json:"notes"`
}

func (r StatusRequest) Validate() error {
	if r.Status == "" {
		return errors.New("не указан статус")
	}
	return nil
}
