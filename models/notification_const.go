package models

import "fmt"

type NotificationCode string

type NotificationTpl struct {
	Name  string
	Title string
	Msg   string
}

var NotificationCodeMap = map[NotificationCode]NotificationTpl{
	NotifyGeneric: {Name: "Системное уведомление", Title: "Уведомление", Msg: "%v"},

	NotifyApplicationNew:    {Name: "Новый отклик на вакансию", Title: "Новый отклик", Msg: "На вакансию «%v» пришёл новый отклик от кандидата %v."},
	NotifyApplicationStatus: {Name: "Изменение статуса отклика", Title: "Статус отклика изменён", Msg: "Статус вашего отклика на вакансию «%v» агентства «%v» изменён: %v."},

	NotifyInterviewScheduled: {Name: "Назначено собеседование", Title: "Назначено собеседование", Msg: "Агентство «%v» пригласило вас на собеседование по вакансии «%v». Время: %v."},

	NotifyNewMessage: {Name: "Новое сообщение", Title: "Новое сообщение", Msg: "Новое сообщение от %v по вакансии «%v»."},
}

const (
	NotifyGeneric NotificationCode = "Generic"

	NotifyApplicationNew    NotificationCode = "ApplicationNew"
	NotifyApplicationStatus NotificationCode = "ApplicationStatus"

	NotifyInterviewScheduled NotificationCode = "InterviewScheduled"

	NotifyNewMessage NotificationCode = "NewMessage"
)

type NotificationData struct {
	Code  NotificationCode
	Title string
	Msg   string
	Link  string
}

func GetNotifyGeneric(msg string) NotificationData {
	code := NotifyGeneric
	return NotificationData{
		Code:  code,
		Title: NotificationCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotificationCodeMap[code].Msg, msg),
	}
}

func GetNotifyApplicationNew(positionTitle, candidateFullName, link string) NotificationData {
	code := NotifyApplicationNew
	return NotificationData{
		Code:  code,
		Title: NotificationCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotificationCodeMap[code].Msg, positionTitle, candidateFullName),
		Link:  link,
	}
}

func GetNotifyApplicationStatus(positionTitle, agencyName, statusHuman, link string) NotificationData {
	code := NotifyApplicationStatus
	return NotificationData{
		Code:  code,
		Title: NotificationCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotificationCodeMap[code].Msg, positionTitle, agencyName, statusHuman),
		Link:  link,
	}
}

func GetNotifyInterviewScheduled(agencyName, positionTitle, scheduledAt, link string) NotificationData {
	code := NotifyInterviewScheduled
	return NotificationData{
		Code:  code,
		Title: NotificationCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotificationCodeMap[code].Msg, agencyName, positionTitle, scheduledAt),
		Link:  link,
	}
}

func GetNotifyNewMessage(senderFullName, positionTitle, link string) NotificationData {
	code := NotifyNewMessage
	return NotificationData{
		Code:  code,
		Title: NotificationCodeMap[code].Title,
		Msg:   fmt.Sprintf(NotificationCodeMap[code].Msg, senderFullName, positionTitle),
		Link:  link,
	}
}
