package models

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "APPLIED"
	ApplicationStatusReviewing ApplicationStatus = "REVIEWING"
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	ApplicationStatusOffer     ApplicationStatus = "OFFER"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

func (s ApplicationStatus) IsFinal() bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}

func (s ApplicationStatus) ToHuman() string {
	switch s {
	case ApplicationStatusApplied:
		return "Отклик отправлен"
	case ApplicationStatusReviewing:
		return "На рассмотрении"
	case ApplicationStatusInterview:
		return "Назначено собеседование"
	case ApplicationStatusOffer:
		return "Оффер"
	case ApplicationStatusRejected:
		return "Отказ"
	case ApplicationStatusWithdrawn:
		return "Отозван кандидатом"
	}
	return string(s)
}

type InterviewMode string

const (
	InterviewModeRemote   InterviewMode = "REMOTE"
	InterviewModeInPerson InterviewMode = "IN_PERSON"
)

func (m InterviewMode) IsValid() bool {
	return m == InterviewModeRemote || m == InterviewModeInPerson
}

type PositionStatus string

const (
	PositionStatusOpen   PositionStatus = "OPEN"
	PositionStatusClosed PositionStatus = "CLOSED"
)

type EmploymentType string

const (
	EmploymentTypeFull       EmploymentType = "FULL_TIME"
	EmploymentTypePart       EmploymentType = "PART_TIME"
	EmploymentTypeContract   EmploymentType = "CONTRACT"
	EmploymentTypeInternship EmploymentType = "INTERNSHIP"
)

type FileType string

const (
	FileTypeResume FileType = "RESUME"
	FileTypeAvatar FileType = "AVATAR"
)
