package emailverifystore

import (
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.EmailVerify) error
	GetByCode(code string) (*dbmodels.EmailVerify, error)
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

func (i impl) Create(rec dbmodels.EmailVerify) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) GetByCode(code string) (rec *dbmodels.EmailVerify, err error) {
	err = i.db.
		Model(dbmodels.EmailVerify{}).
		Where("code = ?", code).
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
		Model(&dbmodels.EmailVerify{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
