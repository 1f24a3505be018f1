package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	expensehandler "hr-office-backend/lib/expense-report"
	filestorage "hr-office-backend/lib/file-storage"
	"hr-office-backend/middleware"
	apimodels "hr-office-backend/models/api"
	expenseapimodels "hr-office-backend/models/api/expense"
)

type expenseApiController struct {
	controllers.BaseAPIController
}

func InitExpenseApiRouters(app *fiber.App) {
	controller := expenseApiController{}
	app.Route("expense-report", func(router fiber.Router) {
		router.Post("", controller.expenseCreate)
		router.Get("assignation/:id", controller.expenseListByAssignation)
		router.Get("assignation/:id/status", controller.expenseStatusesByAssignation)
		router.Get(":id", controller.expenseGet)
		router.Put(":id", controller.expenseUpdate)
		router.Delete(":id", controller.expenseDelete)

		router.Post(":id/attachment", controller.attachmentUpload)
		router.Get(":id/attachment", controller.attachmentList)

		router.Use(middleware.DRHRoleRequired())
		router.Put("reimburse/:id", controller.expenseReimburse)
		router.Post("queue", controller.expenseQueue)
	})
}

// @Summary Создание строки расходов
// @Tags Отчет о расходах
// @Description Создание строки расходов по назначению
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 expenseapimodels.ExpenseReportData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report [post]
func (c *expenseApiController) expenseCreate(ctx *fiber.Ctx) error {
	var payload expenseapimodels.ExpenseReportData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := expensehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания строки расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение строки расходов
// @Tags Отчет о расходах
// @Description Получение строки расходов по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=expenseapimodels.ExpenseReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report/{id} [get]
func (c *expenseApiController) expenseGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := expensehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения строки расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление строки расходов
// @Tags Отчет о расходах
// @Description Обновление строки расходов (до возмещения)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 expenseapimodels.ExpenseReportData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report/{id} [put]
func (c *expenseApiController) expenseUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload expenseapimodels.ExpenseReportData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = expensehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления строки расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление строки расходов
// @Tags Отчет о расходах
// @Description Удаление строки расходов (до возмещения)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report/{id} [delete]
func (c *expenseApiController) expenseDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = expensehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления строки расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Расходы по назначению
// @Tags Отчет о расходах
// @Description Строки расходов назначения с итоговой суммой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "assignation ID"
// @Success 200 {object} apimodels.Response{data=[]expenseapimodels.ExpenseReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report/assignation/{id} [get]
func (c *expenseApiController) expenseListByAssignation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, total, err := expensehandler.Instance.ListByAssignationID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{
		"list":         list,
		"total_amount": total,
	}))
}

// @Summary Статусы расходов по назначению
// @Tags Отчет о расходах
// @Description Набор различных статусов строк расходов назначения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "assignation ID"
// @Success 200 {object} apimodels.Response{data=[]string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report/assignation/{id}/status [get]
func (c *expenseApiController) expenseStatusesByAssignation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	statuses, err := expensehandler.Instance.GetStatusesByAssignationID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статусов расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(statuses))
}

// @Summary Загрузка чека
// @Tags Отчет о расходах
// @Description Загрузка подтверждающего документа к строке расходов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 expenseapimodels.AttachmentData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report/{id}/attachment [post]
func (c *expenseApiController) attachmentUpload(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload expenseapimodels.AttachmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileID, err := filestorage.Instance.UploadToExpenseReport(ctx.UserContext(), id, middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки документа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Список чеков
// @Tags Отчет о расходах
// @Description Список подтверждающих документов строки расходов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]expenseapimodels.AttachmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report/{id}/attachment [get]
func (c *expenseApiController) attachmentList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := filestorage.Instance.ListByExpenseReportID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения документов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Возмещение расходов
// @Tags Отчет о расходах
// @Description Возмещение всех ожидающих строк расходов назначения (только DRH)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "assignation ID"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report/reimburse/{id} [put]
func (c *expenseApiController) expenseReimburse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	affected, err := expensehandler.Instance.Reimburse(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка возмещения расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(affected))
}

// @Summary Очередь на возмещение
// @Tags Отчет о расходах
// @Description Очередь назначений с невозмещенными расходами (только DRH)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 expenseapimodels.QueueFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]expenseapimodels.QueueItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/expense-report/queue [post]
func (c *expenseApiController) expenseQueue(ctx *fiber.Ctx) error {
	var filter expenseapimodels.QueueFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := expensehandler.Instance.Queue(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения очереди на возмещение")
	}
	page, pageSize := filter.GetPage()
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount, page, pageSize))
}
