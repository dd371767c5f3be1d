package positionapimodels

import (
	"strings"

	"ppalink-backend/models"
	apimodels "ppalink-backend/models/api"

	"github.com/pkg/errors"
)

type PositionData struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	EmploymentType models.EmploymentType `json:"employment_type"`
	Location       string                `json:"location"`
	SalaryMin      int                   `json:"salary_min"`
	SalaryMax      int                   `json:"salary_max"`
}

func (r PositionData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	if r.SalaryMin < 0 || r.SalaryMax < 0 || (r.SalaryMax > 0 && r.SalaryMin > r.SalaryMax) {
		return errors.New("некорректная зарплатная вилка")
	}
	return nil
}

type PositionView struct {
	PositionData
	ID         string                `json:"id"`
	Status     models.PositionStatus `json:"status"`
	AgencyID   string                `json:"agency_id"`
	AgencyName string                `json:"agency_name,omitempty"`
}

type PositionFilter struct {
	apimodels.Pagination
	Search         string                `json:"search"`
	EmploymentType models.EmploymentType `json:"employment_type"`
	Location       string                `json:"location"`
}

type StatusRequest struct {
	Status models.PositionStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	if r.Status != models.PositionStatusOpen && r.Status != models.PositionStatusClosed {
		return errors.New("неизвестный статус вакансии")
	}
	return nil
}

type GenDescriptionRequest struct {
	Title  string `json:"title"`
	Skills string `json:"skills"`
}

func (r GenDescriptionRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("не указано название вакансии")
	}
	return nil
}

type GenDescriptionResponse struct {
	Description string `json:"description"`
}
