package dict

import (
	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	expensetypeprovider "hr-office-backend/lib/dicts/expense-type"
	"hr-office-backend/middleware"
	apimodels "hr-office-backend/models/api"
	dictapimodels "hr-office-backend/models/api/dict"
)

type expenseTypeDictApiController struct {
	controllers.BaseAPIController
}

func InitExpenseTypeDictApiRouters(app *fiber.App) {
	controller := expenseTypeDictApiController{}
	app.Route("expense-type", func(router fiber.Router) {
		router.Get("", controller.expenseTypeList)
		router.Get(":id", controller.expenseTypeGet)
		router.Use(middleware.DRHRoleRequired())
		router.Post("", controller.expenseTypeCreate)
		router.Delete(":id", controller.expenseTypeDelete)
	})
}

// @Summary Создание
// @Tags Справочник. Тип расходов
// @Description Создание
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.ExpenseTypeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/expense-type [post]
func (c *expenseTypeDictApiController) expenseTypeCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.ExpenseTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := expensetypeprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания типа расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение по ИД
// @Tags Справочник. Тип расходов
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.ExpenseTypeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/expense-type/{id} [get]
func (c *expenseTypeDictApiController) expenseTypeGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := expensetypeprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения типа расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список
// @Tags Справочник. Тип расходов
// @Description Список
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.ExpenseTypeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/expense-type [get]
func (c *expenseTypeDictApiController) expenseTypeList(ctx *fiber.Ctx) error {
	resp, err := expensetypeprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка типов расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Справочник. Тип расходов
// @Description Удаление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/expense-type/{id} [delete]
func (c *expenseTypeDictApiController) expenseTypeDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = expensetypeprovider.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления типа расходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
