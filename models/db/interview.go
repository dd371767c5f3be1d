package dbmodels

import (
	"ppalink-backend/models"
	interviewapimodels "ppalink-backend/models/api/interview"
	"time"
)

// Interview — собеседование по отклику.
// Повторное назначение создаёт новую запись, старые не изменяются.
type Interview struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index:idx_interview_application"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	ScheduledAt   time.Time
	Mode          models.InterviewMode `gorm:"type:varchar(50)"`
	Location      string               `gorm:"type:varchar(500)"` // адрес или ссылка на встречу
	Details       string
}

func (r Interview) ToModelView() interviewapimodels.InterviewView {
	return interviewapimodels.InterviewView{
		ID:            r.ID,
		ApplicationID: r.ApplicationID,
		ScheduledAt:   r.ScheduledAt,
		Mode:          r.Mode,
		Location:      r.Location,
		Details:       r.Details,
		CreatedAt:     r.CreatedAt,
	}
}
