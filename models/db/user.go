package dbmodels

import (
	"fmt"
	"ppalink-backend/models"
	"time"
)

type User struct {
	BaseModel
	Email         string `gorm:"type:varchar(255);uniqueIndex:idx_user_email"`
	Password      string `gorm:"type:varchar(128)"`
	FirstName     string `gorm:"type:varchar(150)"`
	LastName      string `gorm:"type:varchar(150)"`
	PhoneNumber   string `gorm:"type:varchar(15)"`
	Role          models.UserRole `gorm:"type:varchar(50)"`
	EmailVerified bool
	IsActive      bool
	LastLogin     time.Time
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
