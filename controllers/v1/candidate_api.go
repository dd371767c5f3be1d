package apiv1

import (
	"fmt"

	"ppalink-backend/controllers"
	candidatehandler "ppalink-backend/lib/candidate"
	filestorage "ppalink-backend/lib/file-storage"
	"ppalink-backend/middleware"
	"ppalink-backend/models"
	apimodels "ppalink-backend/models/api"
	candidateapimodels "ppalink-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidate", func(router fiber.Router) {
		router.Use(middleware.CandidateRequired())
		router.Get("profile", controller.getProfile)
		router.Put("profile", controller.updateProfile)
		router.Post("resume", controller.uploadResume)
		router.Post("avatar", controller.uploadAvatar)
	})
}

// @Summary Профиль кандидата
// @Tags Кандидат
// @Description Получить свой профиль
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ProfileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile [get]
func (c *candidateApiController) getProfile(ctx *fiber.Ctx) error {
	candidateID := middleware.GetCandidateID(ctx)
	resp, err := candidatehandler.Instance.Get(candidateID)
	if err != nil {
		if errors.Is(err, candidatehandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление профиля кандидата
// @Tags Кандидат
// @Description Обновить свой профиль
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		candidateapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/profile [put]
func (c *candidateApiController) updateProfile(ctx *fiber.Ctx) error {
	candidateID := middleware.GetCandidateID(ctx)
	var payload candidateapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidatehandler.Instance.Update(candidateID, payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Загрузка резюме
// @Tags Кандидат
// @Description Загрузить файл резюме (multipart/form-data, поле file)
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	return c.uploadFile(ctx, models.FileTypeResume)
}

// @Summary Загрузка аватара
// @Tags Кандидат
// @Description Загрузить аватар (multipart/form-data, поле file)
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidate/avatar [post]
func (c *candidateApiController) uploadAvatar(ctx *fiber.Ctx) error {
	return c.uploadFile(ctx, models.FileTypeAvatar)
}

func (c *candidateApiController) uploadFile(ctx *fiber.Ctx, fileType models.FileType) error {
	candidateID := middleware.GetCandidateID(ctx)
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось открыть файл"))
	}
	defer file.Close()
	body := make([]byte, fileHeader.Size)
	if _, err = file.Read(body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл"))
	}
	contentType := fileHeader.Header.Get("Content-Type")
	switch fileType {
	case models.FileTypeResume:
		err = filestorage.Instance.UploadResume(ctx.Context(), candidateID, fileHeader.Filename, contentType, body)
	case models.FileTypeAvatar:
		err = filestorage.Instance.UploadAvatar(ctx.Context(), candidateID, fileHeader.Filename, contentType, body)
	default:
		err = fmt.Errorf("неизвестный тип файла: %v", fileType)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
