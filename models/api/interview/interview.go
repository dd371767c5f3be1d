package interviewapimodels

import (
	"strings"
	"time"

	"ppalink-backend/models"

	"github.com/pkg/errors"
)

type InterviewData struct {
	ScheduledAt string               `json:"scheduled_at"` // RFC3339
	Mode        models.InterviewMode `json:"mode"`
	Location    string               `json:"location"` // адрес или ссылка на встречу
	Details     string               `json:"details"`
}

func (r InterviewData) Validate() error {
	if _, err := r.GetScheduledAt(); err != nil {
		return err
	}
	if !r.Mode.IsValid() {
		return errors.New("неизвестный формат собеседования")
	}
	if r.Mode == models.InterviewModeInPerson && strings.TrimSpace(r.Location) == "" {
		return errors.New("для очного собеседования требуется адрес")
	}
	return nil
}

func (r InterviewData) GetScheduledAt() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, r.ScheduledAt)
	if err != nil {
		return time.Time{}, errors.New("некорректное время собеседования, ожидается RFC3339")
	}
	return t, nil
}

type InterviewView struct {
	ID            string               `json:"id"`
	ApplicationID string               `json:"application_id"`
	ScheduledAt   time.Time            `json:"scheduled_at"`
	Mode          models.InterviewMode `json:"mode"`
	Location      string               `json:"location,omitempty"`
	Details       string               `json:"details,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}
