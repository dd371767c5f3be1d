package messageapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type SendRequest struct {
	Body string `json:"body"`
}

func (r SendRequest) Validate() error {
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("пустое сообщение")
	}
	if len(r.Body) > 5000 {
		return errors.New("сообщение слишком длинное")
	}
	return nil
}

type MessageView struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	FromUserID    string    `json:"from_user_id"`
	FromFullName  string    `json:"from_full_name,omitempty"`
	Body          string    `json:"body"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}
