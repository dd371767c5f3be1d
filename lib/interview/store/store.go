package interviewstore

import (
	dbmodels "ppalink-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	ListByApplication(applicationID string) ([]dbmodels.Interview, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Interview, err error) {
	err = i.db.
		Model(dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
		Order("scheduled_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
