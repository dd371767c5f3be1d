package dbmodels

import "time"

type EmailVerify struct {
	BaseModel
	Email         string `gorm:"type:varchar(255);index:idx_verify_email"`
	Code          string `gorm:"type:varchar(50);index:idx_verify_code"`
	DateGenerated time.Time
	DateExpires   time.Time
	DateUsed      time.Time
}
