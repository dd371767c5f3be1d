package dbmodels

import "ppalink-backend/models"

type FileStorage struct {
	BaseModel
	CandidateID string          `gorm:"type:varchar(36);index:idx_file_candidate"`
	FileType    models.FileType `gorm:"type:varchar(50)"`
	FileName    string          `gorm:"type:varchar(255)"`
	ContentType string          `gorm:"type:varchar(100)"`
}
