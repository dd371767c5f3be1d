package apiv1

import (
	"fmt"

	"ppalink-backend/controllers"
	agencyhandler "ppalink-backend/lib/agency"
	candidatehandler "ppalink-backend/lib/candidate"
	filestorage "ppalink-backend/lib/file-storage"
	"ppalink-backend/middleware"
	"ppalink-backend/models"
	apimodels "ppalink-backend/models/api"
	agencyapimodels "ppalink-backend/models/api/agency"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type agencyApiController struct {
	controllers.BaseAPIController
}

func InitAgencyApiRouters(app *fiber.App) {
	controller := agencyApiController{}
	app.Route("agency", func(router fiber.Router) {
		router.Use(middleware.AgencyRequired())
		router.Get("", controller.get)
		router.Put("", middleware.AgencyOwnerRequired(), controller.update)
		router.Get("members", controller.listMembers)
		router.Post("members", middleware.AgencyOwnerRequired(), controller.inviteMember)
		router.Delete("members/:id", middleware.AgencyOwnerRequired(), controller.removeMember)
		router.Get("candidate/:id", controller.getCandidate)
		router.Get("candidate/:id/profile-pdf", controller.candidateProfilePDF)
		router.Get("candidate/:id/resume", controller.candidateResume)
	})
}

// @Summary Карточка агентства
// @Tags Агентство
// @Description Получить карточку своего агентства
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=agencyapimodels.AgencyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agency [get]
func (c *agencyApiController) get(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	resp, err := agencyhandler.Instance.Get(agencyID)
	if err != nil {
		if errors.Is(err, agencyhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление агентства
// @Tags Агентство
// @Description Обновить карточку агентства, доступно владельцу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		agencyapimodels.AgencyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agency [put]
func (c *agencyApiController) update(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	var payload agencyapimodels.AgencyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := agencyhandler.Instance.Update(agencyID, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Команда агентства
// @Tags Агентство
// @Description Список сотрудников агентства
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]agencyapimodels.MemberView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agency/members [get]
func (c *agencyApiController) listMembers(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	resp, err := agencyhandler.Instance.ListMembers(agencyID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Приглашение сотрудника
// @Tags Агентство
// @Description Создать учётную запись сотрудника, доступно владельцу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		agencyapimodels.MemberInvite	true	"request body"
// @Success 200 {object} apimodels.Response{data=agencyapimodels.MemberView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agency/members [post]
func (c *agencyApiController) inviteMember(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	var payload agencyapimodels.MemberInvite
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := agencyhandler.Instance.InviteMember(agencyID, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление сотрудника
// @Tags Агентство
// @Description Удалить сотрудника из агентства, доступно владельцу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agency/members/{id} [delete]
func (c *agencyApiController) removeMember(ctx *fiber.Ctx) error {
	agencyID := middleware.GetAgencyID(ctx)
	memberID := ctx.Params("id")
	if err := agencyhandler.Instance.RemoveMember(agencyID, memberID); err != nil {
		if errors.Is(err, agencyhandler.ErrMemberNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Профиль кандидата
// @Tags Агентство
// @Description Просмотр профиля кандидата агентством
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор кандидата"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agency/candidate/{id} [get]
func (c *agencyApiController) getCandidate(ctx *fiber.Ctx) error {
	candidateID := ctx.Params("id")
	resp, err := candidatehandler.Instance.Get(candidateID)
	if err != nil {
		if errors.Is(err, candidatehandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Анкета кандидата в pdf
// @Tags Агентство
// @Description Выгрузка анкеты кандидата в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор кандидата"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agency/candidate/{id}/profile-pdf [get]
func (c *agencyApiController) candidateProfilePDF(ctx *fiber.Ctx) error {
	candidateID := ctx.Params("id")
	fileName, body, err := candidatehandler.Instance.ExportPDF(candidateID)
	if err != nil {
		if errors.Is(err, candidatehandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Резюме кандидата
// @Tags Агентство
// @Description Скачать загруженное кандидатом резюме
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"идентификатор кандидата"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/agency/candidate/{id}/resume [get]
func (c *agencyApiController) candidateResume(ctx *fiber.Ctx) error {
	candidateID := ctx.Params("id")
	rec, body, err := filestorage.Instance.GetFile(ctx.Context(), candidateID, models.FileTypeResume)
	if err != nil {
		if errors.Is(err, filestorage.ErrFileNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	ctx.Set(fiber.HeaderContentType, rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rec.FileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
