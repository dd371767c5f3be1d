package apiv1

import (
	"fmt"

	"ppalink-backend/controllers"
	applicationhandler "ppalink-backend/lib/application"
	interviewhandler "ppalink-backend/lib/interview"
	"ppalink-backend/middleware"
	apimodels "ppalink-backend/models/api"
	applicationapimodels "ppalink-backend/models/api/application"
	interviewapimodels "ppalink-backend/models/api/interview"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		// маршруты кандидата
		router.Post("", middleware.CandidateRequired(), controller.apply)
		router.Get("my", middleware.CandidateRequired(), controller.listMy)
		router.Put(":id/withdraw", middleware.CandidateRequired(), controller.withdraw)
		// маршруты агентства
		router.Get(":id", middleware.AgencyRequired(), controller.get)
		router.Put(":id/status", middleware.AgencyRequired(), controller.setStatus)
		router.Post(":id/interview", middleware.AgencyRequired(), controller.scheduleInterview)
		router.Get(":id/interview/list", controller.listInterviews)
		router.Post("position/:id/list", middleware.AgencyRequired(), controller.listByPosition)
		router.Get("position/:id/export", middleware.AgencyRequired(), controller.exportByPosition)
	})
}

// @Summary Отклик на вакансию
// @Tags Отклики
// @Description Откликнуться на открытую вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		applicationapimodels.ApplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application [post]
func (c *applicationApiController) apply(ctx *fiber.Ctx) error {
	candidateID := middleware.GetCandidateID(ctx)
	var payload applicationapimodels.ApplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.Apply(candidateID, payload)
	if err != nil {
		if errors.Is(err, applicationhandler.ErrPositionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Мои отклики
// @Tags Отклики
// @Description Список откликов кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/my [get]
func (c *applicationApiController) listMy(ctx *fiber.Ctx) error {
	candidateID := middleware.GetCandidateID(ctx)
	resp, err := applicationhandler.Instance.ListMy(candidateID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отзыв отклика
// @Tags Отклики
// @Description Отозвать свой отклик
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор отклика"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/withdraw [put]
func (c *applicationApiController) withdraw(ctx *fiber.Ctx) error {
	candidateID := middleware.GetCandidateID(ctx)
	err := applicationhandler.Instance.Withdraw(candidateID, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, applicationhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Карточка отклика
// @Tags Отклики
// @Description Отклик на вакансию агентства
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор отклика"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	resp, err := applicationhandler.Instance.GetForAgency(agencyID, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, applicationhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена статуса отклика
// @Tags Отклики
// @Description Сменить статус отклика, кандидат получает уведомление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор отклика"
// @Param	body				body		applicationapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/status [put]
func (c *applicationApiController) setStatus(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	var payload applicationapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := applicationhandler.Instance.ChangeStatus(agencyID, ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, applicationhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Назначение собеседования
// @Tags Отклики
// @Description Назначить собеседование по отклику, отклик переходит в статус INTERVIEW
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор отклика"
// @Param	body				body		interviewapimodels.InterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/interview [post]
func (c *applicationApiController) scheduleInterview(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	userID := middleware.GetUserID(ctx)
	var payload interviewapimodels.InterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := interviewhandler.Instance.Schedule(agencyID, userID, ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, interviewhandler.ErrApplicationNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Собеседования по отклику
// @Tags Отклики
// @Description Список собеседований по отклику, доступен обеим сторонам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор отклика"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/interview/list [get]
func (c *applicationApiController) listInterviews(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	candidateID := middleware.GetCandidateID(ctx)
	resp, err := interviewhandler.Instance.ListByApplication(agencyID, candidateID, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, interviewhandler.ErrApplicationNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклики по вакансии
// @Tags Отклики
// @Description Список откликов по вакансии агентства
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор вакансии"
// @Param	body				body		applicationapimodels.ApplicationFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/position/{id}/list [post]
func (c *applicationApiController) listByPosition(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	var payload applicationapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, rowCount, err := applicationhandler.Instance.ListByPosition(agencyID, ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, applicationhandler.ErrPositionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(resp, rowCount))
}

// @Summary Выгрузка откликов
// @Tags Отклики
// @Description Выгрузка откликов по вакансии в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор вакансии"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/position/{id}/export [get]
func (c *applicationApiController) exportByPosition(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	fileName, body, err := applicationhandler.Instance.ExportByPosition(agencyID, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, applicationhandler.ErrPositionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(body.Bytes())
}
