package gpthandler

import (
	"context"
	"fmt"

	"ppalink-backend/config"
	yagptclient "ppalink-backend/lib/gpt/yagpt-client"
	positionapimodels "ppalink-backend/models/api/position"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GeneratePositionDescription(ctx context.Context, agencyID string, data positionapimodels.GenDescriptionRequest) (resp positionapimodels.GenDescriptionResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		client: yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID),
		promt:  config.Conf.YandexGPT.Prompt,
	}
}

type impl struct {
	client yagptclient.Provider
	promt  string
}

func (i impl) GeneratePositionDescription(ctx context.Context, agencyID string, data positionapimodels.GenDescriptionRequest) (resp positionapimodels.GenDescriptionResponse, err error) {
	logger := log.WithField("agency_id", agencyID)
	if err = data.Validate(); err != nil {
		return resp, err
	}
	if i.promt == "" {
		return resp, errors.New("инструкция для YandexGPT не задана в конфигурации")
	}
	text := fmt.Sprintf("Сгенерируй описание для вакансии имея эти вводные данные: должность «%s», требуемые навыки: %s", data.Title, data.Skills)
	resp.Description, err = i.client.Generate(ctx, i.promt, text)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации описания через YandexGPT")
		return resp, err
	}
	return resp, nil
}
