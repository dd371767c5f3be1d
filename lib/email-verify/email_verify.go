package emailverifyhandler

import (
	"fmt"
	"time"

	"ppalink-backend/config"
	"ppalink-backend/db"
	emailverifystore "ppalink-backend/lib/email-verify/store"
	"ppalink-backend/lib/smtp"
	usersstore "ppalink-backend/lib/users/store"
	dbmodels "ppalink-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrCodeNotFound = errors.New("код подтверждения не найден")
	ErrCodeExpired  = errors.New("код подтверждения просрочен")
)

const codeTTL = 24 * time.Hour

type Provider interface {
	// SendVerification отправляет письмо со ссылкой подтверждения почты
	SendVerification(email string) error
	Verify(code string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      emailverifystore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      emailverifystore.Provider
	usersStore usersstore.Provider
}

func (i impl) SendVerification(email string) error {
	logger := log.WithField("email", email)
	now := time.Now()
	rec := dbmodels.EmailVerify{
		Email:         email,
		Code:          uuid.New().String(),
		DateGenerated: now,
		DateExpires:   now.Add(codeTTL),
	}
	if err := i.store.Create(rec); err != nil {
		return errors.Wrap(err, "ошибка сохранения кода подтверждения")
	}
	link := fmt.Sprintf("%s/api/v1/auth/verify-email?code=%s", config.Conf.Smtp.DomainForVerifyLink, rec.Code)
	message := fmt.Sprintf("Для подтверждения почты перейдите по ссылке: %s\r\nСсылка действительна 24 часа.", link)
	err := smtp.Instance.SendEMail(config.Conf.Smtp.EmailSendVerification, email, message, "Подтверждение почты")
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма подтверждения")
		return err
	}
	return nil
}

func (i impl) Verify(code string) error {
	rec, err := i.store.GetByCode(code)
	if err != nil {
		return errors.Wrap(err, "ошибка получения кода подтверждения")
	}
	if rec == nil || !rec.DateUsed.IsZero() {
		return ErrCodeNotFound
	}
	if time.Now().After(rec.DateExpires) {
		return ErrCodeExpired
	}
	user, err := i.usersStore.GetByEmail(rec.Email)
	if err != nil {
		return errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil {
		return ErrCodeNotFound
	}
	err = i.store.Update(rec.ID, map[string]interface{}{
		"date_used": time.Now(),
	})
	if err != nil {
		return errors.Wrap(err, "ошибка отметки кода подтверждения")
	}
	err = i.usersStore.Update(user.ID, map[string]interface{}{
		"email_verified": true,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка подтверждения почты пользователя")
	}
	log.WithField("email", rec.Email).Info("почта подтверждена")
	return nil
}
