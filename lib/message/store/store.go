package messagestore

import (
	dbmodels "ppalink-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Message) (id string, err error)
	ListByApplication(applicationID string) ([]dbmodels.Message, error)
	// MarkRead помечает прочитанными входящие сообщения переписки
	MarkRead(applicationID, readerUserID string) error
	UnreadCountForCandidate(candidateID, userID string) (int64, error)
	UnreadCountForAgency(agencyID, userID string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Message) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Message, err error) {
	err = i.db.
		Model(dbmodels.Message{}).
		Preload("FromUser").
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(applicationID, readerUserID string) error {
	return i.db.
		Model(&dbmodels.Message{}).
		Where("application_id = ?", applicationID).
		Where("from_user_id <> ?", readerUserID).
		Where("is_read = false").
		Update("is_read", true).
		Error
}

func (i impl) UnreadCountForCandidate(candidateID, userID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.Message{}).
		Joins("join applications on applications.id = messages.application_id").
		Where("applications.candidate_id = ?", candidateID).
		Where("messages.from_user_id <> ?", userID).
		Where("messages.is_read = false").
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) UnreadCountForAgency(agencyID, userID string) (count int64, err error) {
	err = i.db.
		Model(dbmodels.Message{}).
		Joins("join applications on applications.id = messages.application_id").
		Joins("join positions on positions.id = applications.position_id").
		Where("positions.agency_id = ?", agencyID).
		Where("messages.from_user_id <> ?", userID).
		Where("messages.is_read = false").
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
