package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type JWTResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisterCandidateRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (r RegisterCandidateRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if len(r.Password) < 6 {
		return errors.New("пароль должен содержать не менее 6 символов")
	}
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return errors.New("не указаны имя и фамилия")
	}
	return nil
}

type RegisterAgencyRequest struct {
	AgencyName string `json:"agency_name"`
	Website    string `json:"website"`
	OwnerData  RegisterCandidateRequest `json:"owner_data"`
}

func (r RegisterAgencyRequest) Validate() error {
	if strings.TrimSpace(r.AgencyName) == "" {
		return errors.New("не указано название агентства")
	}
	return r.OwnerData.Validate()
}
