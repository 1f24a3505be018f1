package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	commentprovider "hr-office-backend/lib/comment"
	assignationhandler "hr-office-backend/lib/mission-assignation"
	validationhandler "hr-office-backend/lib/mission-validation"
	"hr-office-backend/middleware"
	apimodels "hr-office-backend/models/api"
	missionapimodels "hr-office-backend/models/api/mission"
	recruitmentapimodels "hr-office-backend/models/api/recruitment"
)

type assignationApiController struct {
	controllers.BaseAPIController
}

func InitAssignationApiRouters(app *fiber.App) {
	controller := assignationApiController{}
	app.Route("mission-assignation", func(router fiber.Router) {
		router.Post("", controller.assignationCreate)
		router.Post("list", controller.assignationList)
		router.Get(":id", controller.assignationGet)
		router.Put(":id", controller.assignationUpdate)
		router.Delete(":id", controller.assignationDelete)

		router.Put(":id/validate", controller.assignationValidate)
		router.Put(":id/reject", controller.assignationReject)
		router.Get(":id/order", controller.assignationOrder)

		router.Post(":id/comment", controller.commentCreate)
		router.Get(":id/comment", controller.commentList)
	})
}

// @Summary Создание назначения
// @Tags Назначение на командировку
// @Description Создание назначения на командировку с цепочкой валидации и суточными
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.AssignationCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation [post]
func (c *assignationApiController) assignationCreate(ctx *fiber.Ctx) error {
	var payload missionapimodels.AssignationCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := assignationhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания назначения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список назначений
// @Tags Назначение на командировку
// @Description Список назначений с фильтром и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.AssignationFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]missionapimodels.AssignationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation/list [post]
func (c *assignationApiController) assignationList(ctx *fiber.Ctx) error {
	var filter missionapimodels.AssignationFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := assignationhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка назначений")
	}
	page, pageSize := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount, page, pageSize))
}

// @Summary Получение назначения
// @Tags Назначение на командировку
// @Description Получение назначения по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=missionapimodels.AssignationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation/{id} [get]
func (c *assignationApiController) assignationGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := assignationhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения назначения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление назначения
// @Tags Назначение на командировку
// @Description Обновление назначения (до начала валидации)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.AssignationData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation/{id} [put]
func (c *assignationApiController) assignationUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload missionapimodels.AssignationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = assignationhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления назначения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление назначения
// @Tags Назначение на командировку
// @Description Удаление назначения (кроме валидированных)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation/{id} [delete]
func (c *assignationApiController) assignationDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = assignationhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления назначения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Валидация назначения
// @Tags Назначение на командировку
// @Description Валидация текущего этапа текущим пользователем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.DecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation/{id}/validate [put]
func (c *assignationApiController) assignationValidate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload missionapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = validationhandler.Instance.Validate(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка валидации назначения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Отклонение назначения
// @Tags Назначение на командировку
// @Description Отклонение текущего этапа: назначение считается отклоненным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 missionapimodels.DecisionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation/{id}/reject [put]
func (c *assignationApiController) assignationReject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload missionapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = validationhandler.Instance.Reject(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения назначения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Командировочное предписание
// @Tags Назначение на командировку
// @Description Формирование ordre de mission в pdf (только для валидированных)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation/{id}/order [get]
func (c *assignationApiController) assignationOrder(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, err := assignationhandler.Instance.GenerateOrder(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования командировочного предписания")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="ordre-de-mission-%s.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Создание комментария
// @Tags Назначение на командировку
// @Description Создание комментария к назначению
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 recruitmentapimodels.CommentData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation/{id}/comment [post]
func (c *assignationApiController) commentCreate(ctx *fiber.Ctx) error {
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
	commentID, err := commentprovider.Instance.CreateForAssignation(id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания комментария")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(commentID))
}

// @Summary Список комментариев
// @Tags Назначение на командировку
// @Description Список комментариев назначения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]recruitmentapimodels.CommentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/mission-assignation/{id}/comment [get]
func (c *assignationApiController) commentList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := commentprovider.Instance.ListByAssignationID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения комментариев")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
