package models

type UserRole string

const (
	UserRoleCandidate    UserRole = "CANDIDATE"
	UserRoleAgencyOwner  UserRole = "AGENCY_OWNER"
	UserRoleAgencyMember UserRole = "AGENCY_MEMBER"
)

func (r UserRole) IsAgency() bool {
	return r == UserRoleAgencyOwner || r == UserRoleAgencyMember
}

func (r UserRole) ToHuman() string {
	switch r {
	case UserRoleCandidate:
		return "Кандидат"
	case UserRoleAgencyOwner:
		return "Владелец агентства"
	case UserRoleAgencyMember:
		return "Рекрутер агентства"
	}
	return string(r)
}
