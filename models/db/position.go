package dbmodels

import (
	"ppalink-backend/models"
	positionapimodels "ppalink-backend/models/api/position"
)

type Position struct {
	BaseModel
	AgencyID       string  `gorm:"type:varchar(36);index:idx_position_agency"`
	Agency         *Agency `gorm:"foreignKey:AgencyID"`
	Title          string  `gorm:"type:varchar(255)"`
	Description    string
	EmploymentType models.EmploymentType `gorm:"type:varchar(50)"`
	Location       string                `gorm:"type:varchar(255)"`
	SalaryMin      int
	SalaryMax      int
	Status         models.PositionStatus `gorm:"type:varchar(50);index:idx_position_status"`
}

func (r Position) ToModelView() positionapimodels.PositionView {
	view := positionapimodels.PositionView{
		ID: r.ID,
		PositionData: positionapimodels.PositionData{
			Title:          r.Title,
			Description:    r.Description,
			EmploymentType: r.EmploymentType,
			Location:       r.Location,
			SalaryMin:      r.SalaryMin,
			SalaryMax:      r.SalaryMax,
		},
		Status:   r.Status,
		AgencyID: r.AgencyID,
	}
	if r.Agency != nil {
		view.AgencyName = r.Agency.Name
	}
	return view
}
