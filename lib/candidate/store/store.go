package candidatestore

import (
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.CandidateProfile) (id string, err error)
	GetByID(id string) (*dbmodels.CandidateProfile, error)
	GetByUserID(userID string) (*dbmodels.CandidateProfile, error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateProfile) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.CandidateProfile, err error) {
	err = i.db.
		Model(dbmodels.CandidateProfile{}).
		Preload("User").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByUserID(userID string) (rec *dbmodels.CandidateProfile, err error) {
	err = i.db.
		Model(dbmodels.CandidateProfile{}).
		Preload("User").
		Where("user_id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.CandidateProfile{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
