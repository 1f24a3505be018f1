package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	commentprovider "hr-office-backend/lib/comment"
	filestorage "hr-office-backend/lib/file-storage"
	recruitmenthandler "hr-office-backend/lib/recruitment-req"
	"hr-office-backend/middleware"
	apimodels "hr-office-backend/models/api"
	expenseapimodels "hr-office-backend/models/api/expense"
	recruitmentapimodels "hr-office-backend/models/api/recruitment"
)

type recruitmentApiController struct {
	controllers.BaseAPIController
}

func InitRecruitmentApiRouters(app *fiber.App) {
	controller := recruitmentApiController{}
	app.Route("recruitment-request", func(router fiber.Router) {
		router.Post("", controller.requestCreate)
		router.Post("list", controller.requestList)
		router.Get(":id", controller.requestGet)
		router.Put(":id", controller.requestUpdate)
		router.Delete(":id", controller.requestDelete)

		router.Put(":id/approve", controller.requestApprove)
		router.Put(":id/reject", controller.requestReject)
		router.Put(":id/status", middleware.DRHRoleRequired(), controller.requestSetStatus)

		router.Post(":id/comment", controller.commentCreate)
		router.Get(":id/comment", controller.commentList)
		router.Put("comment/:id", controller.commentUpdate)
		router.Delete("comment/:id", controller.commentDelete)

		router.Post(":id/attachment", controller.attachmentUpload)
		router.Get(":id/attachment", controller.attachmentList)
		router.Get("attachment/:id", controller.attachmentDownload)
		router.Delete("attachment/:id", controller.attachmentDelete)
	})
}

// @Summary Создание заявки на найм
// @Tags Заявка на найм
// @Description Создание заявки на найм с цепочкой согласования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruitmentapimodels.RecruitmentRequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request [post]
func (c *recruitmentApiController) requestCreate(ctx *fiber.Ctx) error {
	var payload recruitmentapimodels.RecruitmentRequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := recruitmenthandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки на найм")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список заявок на найм
// @Tags Заявка на найм
// @Description Список заявок на найм с фильтром и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruitmentapimodels.RrFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]recruitmentapimodels.RecruitmentRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/list [post]
func (c *recruitmentApiController) requestList(ctx *fiber.Ctx) error {
	var filter recruitmentapimodels.RrFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := recruitmenthandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок на найм")
	}
	page, pageSize := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount, page, pageSize))
}

// @Summary Получение заявки на найм
// @Tags Заявка на найм
// @Description Получение заявки на найм по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=recruitmentapimodels.RecruitmentRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id} [get]
func (c *recruitmentApiController) requestGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := recruitmenthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки на найм")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление заявки на найм
// @Tags Заявка на найм
// @Description Обновление заявки на найм (до терминального статуса)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruitmentapimodels.RecruitmentRequestEditData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id} [put]
func (c *recruitmentApiController) requestUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload recruitmentapimodels.RecruitmentRequestEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = recruitmenthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления заявки на найм")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление заявки на найм
// @Tags Заявка на найм
// @Description Удаление заявки на найм (до терминального статуса)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id} [delete]
func (c *recruitmentApiController) requestDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = recruitmenthandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заявки на найм")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Согласование этапа
// @Tags Заявка на найм
// @Description Согласование текущего этапа заявки текущим пользователем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruitmentapimodels.DecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id}/approve [put]
func (c *recruitmentApiController) requestApprove(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload recruitmentapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = recruitmenthandler.Instance.Approve(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка согласования заявки на найм")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонение этапа
// @Tags Заявка на найм
// @Description Отклонение текущего этапа: заявка переходит в статус Rejeté
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruitmentapimodels.DecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id}/reject [put]
func (c *recruitmentApiController) requestReject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload recruitmentapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = recruitmenthandler.Instance.Reject(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения заявки на найм")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса заявки
// @Tags Заявка на найм
// @Description Административная смена статуса заявки (только DRH)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruitmentapimodels.StatusData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id}/status [put]
func (c *recruitmentApiController) requestSetStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload recruitmentapimodels.StatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = recruitmenthandler.Instance.UpdateStatus(id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса заявки на найм")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Создание комментария
// @Tags Заявка на найм
// @Description Создание комментария к заявке на найм
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruitmentapimodels.CommentData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id}/comment [post]
func (c *recruitmentApiController) commentCreate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload recruitmentapimodels.CommentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	commentID, err := commentprovider.Instance.CreateForRequest(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания комментария")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(commentID))
}

// @Summary Список комментариев
// @Tags Заявка на найм
// @Description Список комментариев заявки на найм
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]recruitmentapimodels.CommentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id}/comment [get]
func (c *recruitmentApiController) commentList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := commentprovider.Instance.ListByRequestID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения комментариев")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление комментария
// @Tags Заявка на найм
// @Description Обновление комментария (только автор)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruitmentapimodels.CommentData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/comment/{id} [put]
func (c *recruitmentApiController) commentUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload recruitmentapimodels.CommentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = commentprovider.Instance.Update(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления комментария")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление комментария
// @Tags Заявка на найм
// @Description Удаление комментария (только автор)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/comment/{id} [delete]
func (c *recruitmentApiController) commentDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = commentprovider.Instance.Delete(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления комментария")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Загрузка вложения
// @Tags Заявка на найм
// @Description Загрузка вложения к заявке на найм (base64, до 10MB)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 expenseapimodels.AttachmentData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id}/attachment [post]
func (c *recruitmentApiController) attachmentUpload(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload expenseapimodels.AttachmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileID, err := filestorage.Instance.UploadToRequest(ctx.UserContext(), id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки вложения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Список вложений
// @Tags Заявка на найм
// @Description Список вложений заявки на найм
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]expenseapimodels.AttachmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/{id}/attachment [get]
func (c *recruitmentApiController) attachmentList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := filestorage.Instance.ListByRequestID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вложений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Скачивание вложения
// @Tags Заявка на найм
// @Description Скачивание вложения (base64 в JSON)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "file ID"
// @Success 200 {object} apimodels.Response{data=expenseapimodels.AttachmentContentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/attachment/{id} [get]
func (c *recruitmentApiController) attachmentDownload(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := filestorage.Instance.Download(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка скачивания вложения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление вложения
// @Tags Заявка на найм
// @Description Удаление вложения из заявки и хранилища
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "file ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/recruitment-request/attachment/{id} [delete]
func (c *recruitmentApiController) attachmentDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = filestorage.Instance.Delete(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вложения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
