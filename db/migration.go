package db

import (
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.EmailVerify{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmailVerify")
	}
	if err := DB.AutoMigrate(&dbmodels.Agency{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Agency")
	}
	if err := DB.AutoMigrate(&dbmodels.AgencyMember{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AgencyMember")
	}
	if err := DB.AutoMigrate(&dbmodels.CandidateProfile{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CandidateProfile")
	}
	if err := DB.AutoMigrate(&dbmodels.Position{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Position")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.Message{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Message")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
