package apiv1

import (
	"ppalink-backend/controllers"
	messagehandler "ppalink-backend/lib/message"
	"ppalink-backend/middleware"
	apimodels "ppalink-backend/models/api"
	messageapimodels "ppalink-backend/models/api/message"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type messageApiController struct {
	controllers.BaseAPIController
}

func InitMessageApiRouters(app *fiber.App) {
	controller := messageApiController{}
	app.Route("message", func(router fiber.Router) {
		router.Post("application/:id", controller.send)
		router.Get("application/:id/list", controller.list)
		router.Get("unread-count", controller.unreadCount)
	})
}

// @Summary Отправка сообщения
// @Tags Сообщения
// @Description Отправить сообщение по отклику, вторая сторона получает уведомление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор отклика"
// @Param	body				body		messageapimodels.SendRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=messageapimodels.MessageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/message/application/{id} [post]
func (c *messageApiController) send(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	agencyID := middleware.GetAgencyID(ctx)
	candidateID := middleware.GetCandidateID(ctx)
	var payload messageapimodels.SendRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := messagehandler.Instance.Send(userID, agencyID, candidateID, ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, messagehandler.ErrApplicationNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Переписка по отклику
// @Tags Сообщения
// @Description Список сообщений по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор отклика"
// @Success 200 {object} apimodels.Response{data=[]messageapimodels.MessageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/message/application/{id}/list [get]
func (c *messageApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	agencyID := middleware.GetAgencyID(ctx)
	candidateID := middleware.GetCandidateID(ctx)
	resp, err := messagehandler.Instance.List(userID, agencyID, candidateID, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, messagehandler.ErrApplicationNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Счётчик непрочитанных сообщений
// @Tags Сообщения
// @Description Количество непрочитанных входящих сообщений по всем откликам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/message/unread-count [get]
func (c *messageApiController) unreadCount(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	agencyID := middleware.GetAgencyID(ctx)
	candidateID := middleware.GetCandidateID(ctx)
	resp, err := messagehandler.Instance.UnreadCount(userID, agencyID, candidateID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
