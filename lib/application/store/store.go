package applicationstore

import (
	applicationapimodels "ppalink-backend/models/api/application"
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	// GetForAgency находит отклик только если вакансия принадлежит агентству
	GetForAgency(id, agencyID string) (*dbmodels.Application, error)
	GetByPositionAndCandidate(positionID, candidateID string) (*dbmodels.Application, error)
	ListByCandidate(candidateID string) ([]dbmodels.Application, error)
	ListByPosition(positionID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, rowCount int64, err error)
	// ListAllByPosition отдаёт все отклики по вакансии без пагинации, для выгрузок
	ListAllByPosition(positionID string) ([]dbmodels.Application, error)
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

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Application, err error) {
	err = i.db.
		Model(dbmodels.Application{}).
		Preload("Candidate").
		Preload("Candidate.User").
		Preload("Position").
		Preload("Position.Agency").
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

func (i impl) GetForAgency(id, agencyID string) (rec *dbmodels.Application, err error) {
	err = i.db.
		Model(dbmodels.Application{}).
		Preload("Candidate").
		Preload("Candidate.User").
		Preload("Position").
		Preload("Position.Agency").
		Joins("JOIN positions ON positions.id = applications.position_id").
		Where("applications.id = ?", id).
		Where("positions.agency_id = ?", agencyID).
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

func (i impl) GetByPositionAndCandidate(positionID, candidateID string) (rec *dbmodels.Application, err error) {
	err = i.db.
		Model(dbmodels.Application{}).
		Where("position_id = ?", positionID).
		Where("candidate_id = ?", candidateID).
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

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.Application, err error) {
	err = i.db.
		Model(dbmodels.Application{}).
		Preload("Position").
		Preload("Position.Agency").
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByPosition(positionID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, rowCount int64, err error) {
	tx := i.db.
		Model(dbmodels.Application{}).
		Preload("Candidate").
		Preload("Candidate.User").
		Where("position_id = ?", positionID)
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
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

func (i impl) ListAllByPosition(positionID string) (list []dbmodels.Application, err error) {
	err = i.db.
		Model(dbmodels.Application{}).
		Preload("Candidate").
		Preload("Candidate.User").
		Preload("Position").
		Where("position_id = ?", positionID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}
