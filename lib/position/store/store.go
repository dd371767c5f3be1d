package positionstore

import (
	"fmt"

	"ppalink-backend/models"
	positionapimodels "ppalink-backend/models/api/position"
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Position) (id string, err error)
	GetByID(id string) (*dbmodels.Position, error)
	GetForAgency(id, agencyID string) (*dbmodels.Position, error)
	ListByAgency(agencyID string) ([]dbmodels.Position, error)
	ListPublic(filter positionapimodels.PositionFilter) (list []dbmodels.Position, rowCount int64, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id, agencyID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Position) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Position, err error) {
	err = i.db.
		Model(dbmodels.Position{}).
		Preload("Agency").
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

func (i impl) GetForAgency(id, agencyID string) (rec *dbmodels.Position, err error) {
	err = i.db.
		Model(dbmodels.Position{}).
		Preload("Agency").
		Where("id = ?", id).
		Where("agency_id = ?", agencyID).
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

func (i impl) ListByAgency(agencyID string) (list []dbmodels.Position, err error) {
	err = i.db.
		Model(dbmodels.Position{}).
		Where("agency_id = ?", agencyID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListPublic(filter positionapimodels.PositionFilter) (list []dbmodels.Position, rowCount int64, err error) {
	tx := i.db.
		Model(dbmodels.Position{}).
		Preload("Agency").
		Where("status = ?", models.PositionStatusOpen)
	if filter.Search != "" {
		search := fmt.Sprintf("%%%v%%", filter.Search)
		tx.Where("title ilike ? OR description ilike ?", search, search)
	}
	if filter.EmploymentType != "" {
		tx.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.Location != "" {
		tx.Where("location ilike ?", fmt.Sprintf("%%%v%%", filter.Location))
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Position{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(id, agencyID string) error {
	return i.db.
		Where("id = ?", id).
		Where("agency_id = ?", agencyID).
		Delete(&dbmodels.Position{}).
		Error
}
