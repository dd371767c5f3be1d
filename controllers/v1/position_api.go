package apiv1

import (
	"ppalink-backend/controllers"
	agencyhandler "ppalink-backend/lib/agency"
	gpthandler "ppalink-backend/lib/gpt"
	positionhandler "ppalink-backend/lib/position"
	"ppalink-backend/middleware"
	apimodels "ppalink-backend/models/api"
	positionapimodels "ppalink-backend/models/api/position"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type positionApiController struct {
	controllers.BaseAPIController
}

func InitPositionApiRouters(app *fiber.App) {
	controller := positionApiController{}
	app.Route("position", func(router fiber.Router) {
		router.Use(middleware.AgencyRequired())
		router.Post("", controller.create)
		router.Get("list", controller.list)
		router.Post("gen-description", controller.genDescription)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Put(":id/status", controller.setStatus)
		router.Delete(":id", controller.delete)
	})
	// публичный поиск вакансий для кандидатов
	app.Route("job", func(router fiber.Router) {
		router.Use(middleware.CandidateRequired())
		router.Post("search", controller.search)
		router.Get("agency/:id", controller.getAgency)
		router.Get(":id", controller.getPublic)
	})
}

// @Summary Создание вакансии
// @Tags Вакансии
// @Description Создать вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		positionapimodels.PositionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position [post]
func (c *positionApiController) create(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	var payload positionapimodels.PositionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := positionhandler.Instance.Create(agencyID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Вакансии агентства
// @Tags Вакансии
// @Description Список вакансий своего агентства
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/list [get]
func (c *positionApiController) list(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	resp, err := positionhandler.Instance.ListByAgency(agencyID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Генерация описания вакансии
// @Tags Вакансии
// @Description Сгенерировать описание вакансии через YandexGPT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		positionapimodels.GenDescriptionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=positionapimodels.GenDescriptionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/gen-description [post]
func (c *positionApiController) genDescription(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	var payload positionapimodels.GenDescriptionRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := gpthandler.Instance.GeneratePositionDescription(ctx.Context(), agencyID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Карточка вакансии
// @Tags Вакансии
// @Description Получить вакансию своего агентства
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор вакансии"
// @Success 200 {object} apimodels.Response{data=positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id} [get]
func (c *positionApiController) get(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	resp, err := positionhandler.Instance.Get(agencyID, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, positionhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление вакансии
// @Tags Вакансии
// @Description Обновить вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор вакансии"
// @Param	body				body		positionapimodels.PositionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id} [put]
func (c *positionApiController) update(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	var payload positionapimodels.PositionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := positionhandler.Instance.Update(agencyID, ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, positionhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса вакансии
// @Tags Вакансии
// @Description Открыть или закрыть вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор вакансии"
// @Param	body				body		positionapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id}/status [put]
func (c *positionApiController) setStatus(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	var payload positionapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := positionhandler.Instance.SetStatus(agencyID, ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, positionhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление вакансии
// @Tags Вакансии
// @Description Удалить вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор вакансии"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id} [delete]
func (c *positionApiController) delete(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	err := positionhandler.Instance.Delete(agencyID, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, positionhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Поиск вакансий
// @Tags Вакансии
// @Description Поиск открытых вакансий кандидатом
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		positionapimodels.PositionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/search [post]
func (c *positionApiController) search(ctx *fiber.Ctx) error {
	var payload positionapimodels.PositionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, rowCount, err := positionhandler.Instance.ListPublic(payload)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(resp, rowCount))
}

// @Summary Карточка вакансии для кандидата
// @Tags Вакансии
// @Description Открытая вакансия, доступная для отклика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор вакансии"
// @Success 200 {object} apimodels.Response{data=positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/{id} [get]
func (c *positionApiController) getPublic(ctx *fiber.Ctx) error {
	resp, err := positionhandler.Instance.GetPublic(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, positionhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Карточка агентства для кандидата
// @Tags Вакансии
// @Description Публичные данные агентства, разместившего вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор агентства"
// @Success 200 {object} apimodels.Response{data=agencyapimodels.AgencyView}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/agency/{id} [get]
func (c *positionApiController) getAgency(ctx *fiber.Ctx) error {
	resp, err := agencyhandler.Instance.Get(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, agencyhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
