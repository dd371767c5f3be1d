package agencyhandler

import (
	"fmt"

	"ppalink-backend/config"
	"ppalink-backend/db"
	agencymemberstore "ppalink-backend/lib/agency/member-store"
	agencystore "ppalink-backend/lib/agency/store"
	"ppalink-backend/lib/smtp"
	usersstore "ppalink-backend/lib/users/store"
	authutils "ppalink-backend/lib/utils/auth-utils"
	connectionhub "ppalink-backend/lib/ws/hub/connection-hub"
	"ppalink-backend/models"
	agencyapimodels "ppalink-backend/models/api/agency"
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("агентство не найдено")
	ErrMemberNotFound = errors.New("сотрудник не найден")
	ErrEmailBusy      = errors.New("пользователь с такой почтой уже зарегистрирован")
)

type Provider interface {
	Get(agencyID string) (agencyapimodels.AgencyView, error)
	Update(agencyID string, data agencyapimodels.AgencyData) error
	ListMembers(agencyID string) ([]agencyapimodels.MemberView, error)
	// InviteMember создаёт учётную запись сотрудника и отправляет ему письмо с доступами
	InviteMember(agencyID string, data agencyapimodels.MemberInvite) (agencyapimodels.MemberView, error)
	RemoveMember(agencyID, memberID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       agencystore.NewInstance(db.DB),
		memberStore: agencymemberstore.NewInstance(db.DB),
		usersStore:  usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store       agencystore.Provider
	memberStore agencymemberstore.Provider
	usersStore  usersstore.Provider
}

func (i impl) Get(agencyID string) (view agencyapimodels.AgencyView, err error) {
	rec, err := i.store.GetByID(agencyID)
	if err != nil {
		return view, errors.Wrap(err, "ошибка получения агентства")
	}
	if rec == nil {
		return view, ErrNotFound
	}
	return rec.ToModelView(), nil
}

func (i impl) Update(agencyID string, data agencyapimodels.AgencyData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(agencyID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения агентства")
	}
	if rec == nil {
		return ErrNotFound
	}
	updMap := map[string]interface{}{
		"name":        data.Name,
		"website":     data.Website,
		"description": data.Description,
		"location":    data.Location,
	}
	if err = i.store.Update(agencyID, updMap); err != nil {
		return errors.Wrap(err, "ошибка обновления агентства")
	}
	return nil
}

func (i impl) ListMembers(agencyID string) (list []agencyapimodels.MemberView, err error) {
	recList, err := i.memberStore.ListByAgency(agencyID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения команды агентства")
	}
	list = make([]agencyapimodels.MemberView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModelView())
	}
	return list, nil
}

func (i impl) InviteMember(agencyID string, data agencyapimodels.MemberInvite) (view agencyapimodels.MemberView, err error) {
	logger := log.
		WithField("agency_id", agencyID).
		WithField("email", data.Email)
	if err = data.Validate(); err != nil {
		return view, err
	}
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		return view, errors.Wrap(err, "ошибка проверки почты")
	}
	if exist {
		return view, ErrEmailBusy
	}
	userRec := dbmodels.User{
		Email:         data.Email,
		Password:      authutils.GetMD5Hash(data.Password),
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Role:          models.UserRoleAgencyMember,
		EmailVerified: true,
		IsActive:      true,
	}
	var memberRec dbmodels.AgencyMember
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		userID, err := usersstore.NewInstance(tx).Create(userRec)
		if err != nil {
			return errors.Wrap(err, "ошибка создания пользователя")
		}
		memberRec = dbmodels.AgencyMember{
			AgencyID: agencyID,
			UserID:   userID,
			IsOwner:  false,
		}
		memberID, err := agencymemberstore.NewInstance(tx).Create(memberRec)
		if err != nil {
			return errors.Wrap(err, "ошибка добавления сотрудника")
		}
		memberRec.ID = memberID
		memberRec.User = &userRec
		return nil
	})
	if err != nil {
		return view, err
	}
	logger.WithField("member_id", memberRec.ID).Info("сотрудник добавлен в агентство")

	go i.sendInviteEmail(logger, data)
	return memberRec.ToModelView(), nil
}

func (i impl) sendInviteEmail(logger *log.Entry, data agencyapimodels.MemberInvite) {
	message := fmt.Sprintf("Вам открыт доступ к кабинету агентства.\r\nЛогин: %s\r\nПароль: %s\r\nАдрес кабинета: %s",
		data.Email, data.Password, config.Conf.App.PublicURL)
	err := smtp.Instance.SendEMail(config.Conf.Smtp.EmailSendVerification, data.Email, message, "Приглашение в агентство")
	if err != nil {
		logger.WithError(err).Error("ошибка отправки приглашения сотруднику")
	}
}

func (i impl) RemoveMember(agencyID, memberID string) error {
	recList, err := i.memberStore.ListByAgency(agencyID)
	if err != nil {
		return errors.Wrap(err, "ошибка получения команды агентства")
	}
	var found *dbmodels.AgencyMember
	for idx := range recList {
		if recList[idx].ID == memberID {
			found = &recList[idx]
			break
		}
	}
	if found == nil {
		return ErrMemberNotFound
	}
	if found.IsOwner {
		return errors.New("нельзя удалить владельца агентства")
	}
	if err = i.memberStore.Delete(agencyID, memberID); err != nil {
		return errors.Wrap(err, "ошибка удаления сотрудника")
	}
	err = i.usersStore.Update(found.UserID, map[string]interface{}{
		"is_active": false,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка деактивации пользователя")
	}
	// закрываем живые соединения удалённого сотрудника
	connectionhub.Instance.SendClose(found.UserID)
	return nil
}
