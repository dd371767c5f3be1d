package authhandler

import (
	"time"

	"ppalink-backend/db"
	agencymemberstore "ppalink-backend/lib/agency/member-store"
	agencystore "ppalink-backend/lib/agency/store"
	candidatestore "ppalink-backend/lib/candidate/store"
	emailverifyhandler "ppalink-backend/lib/email-verify"
	usersstore "ppalink-backend/lib/users/store"
	authutils "ppalink-backend/lib/utils/auth-utils"
	"ppalink-backend/models"
	authapimodels "ppalink-backend/models/api/auth"
	dbmodels "ppalink-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmailBusy        = errors.New("пользователь с такой почтой уже зарегистрирован")
	ErrWrongCredentials = errors.New("неверная почта или пароль")
	ErrUserBlocked      = errors.New("учётная запись заблокирована")
)

type Provider interface {
	RegisterCandidate(data authapimodels.RegisterCandidateRequest) error
	RegisterAgency(data authapimodels.RegisterAgencyRequest) error
	Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error)
	Refresh(refreshToken string) (authapimodels.JWTResponse, error)
	VerifyEmail(code string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore:     usersstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		memberStore:    agencymemberstore.NewInstance(db.DB),
		emailVerify:    emailverifyhandler.Instance,
	}
}

type impl struct {
	usersStore     usersstore.Provider
	candidateStore candidatestore.Provider
	memberStore    agencymemberstore.Provider
	emailVerify    emailverifyhandler.Provider
}

func (i impl) RegisterCandidate(data authapimodels.RegisterCandidateRequest) error {
	logger := log.WithField("email", data.Email)
	if err := data.Validate(); err != nil {
		return err
	}
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки почты")
	}
	if exist {
		return ErrEmailBusy
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		userID, err := usersstore.NewInstance(tx).Create(dbmodels.User{
			Email:       data.Email,
			Password:    authutils.GetMD5Hash(data.Password),
			FirstName:   data.FirstName,
			LastName:    data.LastName,
			PhoneNumber: data.Phone,
			Role:        models.UserRoleCandidate,
			IsActive:    true,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка создания пользователя")
		}
		_, err = candidatestore.NewInstance(tx).Create(dbmodels.CandidateProfile{
			UserID: userID,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка создания профиля кандидата")
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("зарегистрирован кандидат")

	go func() {
		if err := i.emailVerify.SendVerification(data.Email); err != nil {
			logger.WithError(err).Error("ошибка отправки письма подтверждения")
		}
	}()
	return nil
}

func (i impl) RegisterAgency(data authapimodels.RegisterAgencyRequest) error {
	logger := log.
		WithField("email", data.OwnerData.Email).
		WithField("agency_name", data.AgencyName)
	if err := data.Validate(); err != nil {
		return err
	}
	exist, err := i.usersStore.ExistByEmail(data.OwnerData.Email)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки почты")
	}
	if exist {
		return ErrEmailBusy
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		agencyID, err := agencystore.NewInstance(tx).Create(dbmodels.Agency{
			Name:    data.AgencyName,
			Website: data.Website,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка создания агентства")
		}
		userID, err := usersstore.NewInstance(tx).Create(dbmodels.User{
			Email:       data.OwnerData.Email,
			Password:    authutils.GetMD5Hash(data.OwnerData.Password),
			FirstName:   data.OwnerData.FirstName,
			LastName:    data.OwnerData.LastName,
			PhoneNumber: data.OwnerData.Phone,
			Role:        models.UserRoleAgencyOwner,
			IsActive:    true,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка создания пользователя")
		}
		_, err = agencymemberstore.NewInstance(tx).Create(dbmodels.AgencyMember{
			AgencyID: agencyID,
			UserID:   userID,
			IsOwner:  true,
		})
		if err != nil {
			return errors.Wrap(err, "ошибка создания владельца агентства")
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("зарегистрировано агентство")

	go func() {
		if err := i.emailVerify.SendVerification(data.OwnerData.Email); err != nil {
			logger.WithError(err).Error("ошибка отправки письма подтверждения")
		}
	}()
	return nil
}

func (i impl) Login(data authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", data.Email)
	if err = data.Validate(); err != nil {
		return resp, err
	}
	user, err := i.usersStore.GetByEmail(data.Email)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil || user.Password != authutils.GetMD5Hash(data.Password) {
		return resp, ErrWrongCredentials
	}
	if !user.IsActive {
		return resp, ErrUserBlocked
	}
	resp, err = i.issueTokens(user)
	if err != nil {
		return resp, err
	}
	err = i.usersStore.Update(user.ID, map[string]interface{}{
		"last_login": time.Now(),
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения времени входа")
	}
	return resp, nil
}

func (i impl) Refresh(refreshToken string) (resp authapimodels.JWTResponse, err error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		return resp, ErrWrongCredentials
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return resp, ErrWrongCredentials
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil {
		return resp, ErrWrongCredentials
	}
	if !user.IsActive {
		return resp, ErrUserBlocked
	}
	return i.issueTokens(user)
}

func (i impl) VerifyEmail(code string) error {
	return i.emailVerify.Verify(code)
}

// issueTokens кладёт в access-токен идентификаторы агентства/кандидата по роли пользователя
func (i impl) issueTokens(user *dbmodels.User) (resp authapimodels.JWTResponse, err error) {
	agencyID := ""
	candidateID := ""
	if user.Role.IsAgency() {
		member, err := i.memberStore.GetByUser(user.ID)
		if err != nil {
			return resp, errors.Wrap(err, "ошибка получения агентства пользователя")
		}
		if member == nil {
			return resp, errors.New("пользователь не привязан к агентству")
		}
		agencyID = member.AgencyID
	} else {
		profile, err := i.candidateStore.GetByUserID(user.ID)
		if err != nil {
			return resp, errors.Wrap(err, "ошибка получения профиля кандидата")
		}
		if profile == nil {
			return resp, errors.New("профиль кандидата не найден")
		}
		candidateID = profile.ID
	}
	resp.AccessToken, err = authutils.GetToken(user.ID, user.GetFullName(), agencyID, candidateID, user.Role)
	if err != nil {
		return resp, errors.Wrap(err, "ошибка выпуска токена")
	}
	resp.RefreshToken, err = authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return resp, errors.Wrap(err, "ошибка выпуска refresh-токена")
	}
	return resp, nil
}
