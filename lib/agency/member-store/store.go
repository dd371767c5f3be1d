package agencymemberstore

import (
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AgencyMember) (id string, err error)
	ListByAgency(agencyID string) ([]dbmodels.AgencyMember, error)
	GetByUser(userID string) (*dbmodels.AgencyMember, error)
	Delete(agencyID, memberID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AgencyMember) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByAgency(agencyID string) (list []dbmodels.AgencyMember, err error) {
	err = i.db.
		Model(dbmodels.AgencyMember{}).
		Preload("User").
		Where("agency_id = ?", agencyID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByUser(userID string) (rec *dbmodels.AgencyMember, err error) {
	err = i.db.
		Model(dbmodels.AgencyMember{}).
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

func (i impl) Delete(agencyID, memberID string) error {
	return i.db.
		Where("agency_id = ?", agencyID).
		Where("id = ?", memberID).
		Delete(&dbmodels.AgencyMember{}).
		Error
}
