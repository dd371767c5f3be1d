package dbmodels

import (
	candidateapimodels "ppalink-backend/models/api/candidate"
)

type CandidateProfile struct {
	BaseModel
	UserID       string `gorm:"type:varchar(36);uniqueIndex:idx_profile_user"`
	User         *User  `gorm:"foreignKey:UserID"`
	Headline     string `gorm:"type:varchar(255)"`
	Summary      string
	Skills       string `gorm:"type:varchar(1000)"` // список навыков через запятую
	Location     string `gorm:"type:varchar(255)"`
	Salary       int
	LinkedinURL  string `gorm:"type:varchar(255)"`
	PortfolioURL string `gorm:"type:varchar(255)"`
}

func (r CandidateProfile) ToModelView() candidateapimodels.ProfileView {
	view := candidateapimodels.ProfileView{
		ID: r.ID,
		ProfileData: candidateapimodels.ProfileData{
			Headline:     r.Headline,
			Summary:      r.Summary,
			Skills:       r.Skills,
			Location:     r.Location,
			Salary:       r.Salary,
			LinkedinURL:  r.LinkedinURL,
			PortfolioURL: r.PortfolioURL,
		},
	}
	if r.User != nil {
		view.FullName = r.User.GetFullName()
		view.Email = r.User.Email
	}
	return view
}
