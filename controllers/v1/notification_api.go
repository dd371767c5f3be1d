package apiv1

import (
	"ppalink-backend/controllers"
	notificationhandler "ppalink-backend/lib/notification"
	"ppalink-backend/middleware"
	apimodels "ppalink-backend/models/api"
	notificationapimodels "ppalink-backend/models/api/notification"

	"github.com/gofiber/fiber/v2"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("unread-count", controller.unreadCount)
		router.Put(":id/read", controller.markRead)
		router.Put("read-all", controller.markAllRead)
	})
}

// @Summary Список уведомлений
// @Tags Уведомления
// @Description Список уведомлений текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		notificationapimodels.NotificationFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/list [post]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	var payload notificationapimodels.NotificationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, rowCount, err := notificationhandler.Instance.List(userID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(resp, rowCount))
}

// @Summary Количество непрочитанных
// @Tags Уведомления
// @Description Количество непрочитанных уведомлений
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/unread-count [get]
func (c *notificationApiController) unreadCount(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	resp, err := notificationhandler.Instance.UnreadCount(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Прочитать уведомление
// @Tags Уведомления
// @Description Отметить уведомление прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор уведомления"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if err := notificationhandler.Instance.MarkRead(userID, ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Прочитать все уведомления
// @Tags Уведомления
// @Description Отметить все уведомления прочитанными
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/read-all [put]
func (c *notificationApiController) markAllRead(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	if err := notificationhandler.Instance.MarkAllRead(userID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
