package dbmodels

import (
	agencyapimodels "ppalink-backend/models/api/agency"
)

type Agency struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Website     string `gorm:"type:varchar(255)"`
	Description string
	Location    string `gorm:"type:varchar(255)"`
	Verified    bool
}

func (r Agency) ToModelView() agencyapimodels.AgencyView {
	return agencyapimodels.AgencyView{
		ID: r.ID,
		AgencyData: agencyapimodels.AgencyData{
			Name:        r.Name,
			Website:     r.Website,
			Description: r.Description,
			Location:    r.Location,
		},
		Verified: r.Verified,
	}
}

type AgencyMember struct {
	BaseModel
	AgencyID string  `gorm:"type:varchar(36);index:idx_member_agency;uniqueIndex:idx_member_agency_user"`
	Agency   *Agency `gorm:"foreignKey:AgencyID"`
	UserID   string  `gorm:"type:varchar(36);index:idx_member_user;uniqueIndex:idx_member_agency_user"`
	User     *User   `gorm:"foreignKey:UserID"`
	IsOwner  bool
}

func (r AgencyMember) ToModelView() agencyapimodels.MemberView {
	view := agencyapimodels.MemberView{
		ID:      r.ID,
		UserID:  r.UserID,
		IsOwner: r.IsOwner,
	}
	if r.User != nil {
		view.FullName = r.User.GetFullName()
		view.Email = r.User.Email
	}
	return view
}
