package agencyapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type AgencyData struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func (r AgencyData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название агентства")
	}
	return nil
}

type AgencyView struct {
	AgencyData
	ID       string `json:"id"`
	Verified bool   `json:"verified"`
}

type MemberView struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	IsOwner  bool   `json:"is_owner"`
}

type MemberInvite struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r MemberInvite) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if len(r.Password) < 6 {
		return errors.New("пароль должен содержать не менее 6 символов")
	}
	return nil
}
