package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"hr-office-backend/controllers"
	compensationhandler "hr-office-backend/lib/compensation"
	"hr-office-backend/middleware"
	apimodels "hr-office-backend/models/api"
	compensationapimodels "hr-office-backend/models/api/compensation"
)

type compensationApiController struct {
	controllers.BaseAPIController
}

func InitCompensationApiRouters(app *fiber.App) {
	controller := compensationApiController{}
	app.Route("compensation", func(router fiber.Router) {
		router.Get("assignation/:id", controller.compensationListByAssignation)
		router.Get("assignation/:id/export", controller.compensationExport)
		router.Get("employee/:id", controller.compensationByEmployee)
		router.Use(middleware.DRHRoleRequired())
		router.Post("", controller.compensationCreate)
		router.Put(":id/status", controller.compensationSetStatus)
		router.Put("assignation/:id/status", controller.compensationSetStatusByAssignation)
		router.Get("totals", controller.compensationTotals)
	})
}

// @Summary Добавление компенсации
// @Tags Компенсации
// @Description Ручное добавление дневной компенсации (только DRH)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 compensationapimodels.CompensationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/compensation [post]
func (c *compensationApiController) compensationCreate(ctx *fiber.Ctx) error {
	var payload compensationapimodels.CompensationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := compensationhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления компенсации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Компенсации по назначению
// @Tags Компенсации
// @Description Дневные компенсации назначения с итоговой суммой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "assignation ID"
// @Success 200 {object} apimodels.Response{data=[]compensationapimodels.CompensationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/compensation/assignation/{id} [get]
func (c *compensationApiController) compensationListByAssignation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, total, err := compensationhandler.Instance.ListByAssignationID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения компенсаций")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{
		"list":         list,
		"total_amount": total,
	}))
}

// @Summary Выгрузка компенсаций
// @Tags Компенсации
// @Description Выгрузка дневных компенсаций назначения в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "assignation ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/compensation/assignation/{id}/export [get]
func (c *compensationApiController) compensationExport(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	xlsFile, err := compensationhandler.Instance.ExportByAssignationID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки компенсаций")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="compensations-%s.xlsx"`, id))
	return ctx.Status(fiber.StatusOK).Send(xlsFile)
}

// @Summary Компенсации сотрудника
// @Tags Компенсации
// @Description Компенсации сотрудника, сгруппированные по назначениям
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "employee ID"
// @Success 200 {object} apimodels.Response{data=[]compensationapimodels.EmployeeCompensationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/compensation/employee/{id} [get]
func (c *compensationApiController) compensationByEmployee(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := compensationhandler.Instance.GetByEmployeeID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения компенсаций сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена статуса выплаты
// @Tags Компенсации
// @Description Отметка компенсации выплаченной или невыплаченной (только DRH)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 compensationapimodels.StatusData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/compensation/{id}/status [put]
func (c *compensationApiController) compensationSetStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload compensationapimodels.StatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = compensationhandler.Instance.UpdateStatus(id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса компенсации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса выплат по назначению
// @Tags Компенсации
// @Description Отметка всех компенсаций назначения выплаченными или невыплаченными (только DRH)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 compensationapimodels.StatusData	true	"request body"
// @Param   id          		path    string  				    	true         "assignation ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/compensation/assignation/{id}/status [put]
func (c *compensationApiController) compensationSetStatusByAssignation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload compensationapimodels.StatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = compensationhandler.Instance.UpdateStatusByAssignationID(id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статусов компенсаций")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Итоги по выплатам
// @Tags Компенсации
// @Description Суммы выплаченных и невыплаченных компенсаций (только DRH)
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=compensationapimodels.TotalsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/compensation/totals [get]
func (c *compensationApiController) compensationTotals(ctx *fiber.Ctx) error {
	resp, err := compensationhandler.Instance.GetTotals()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения итогов по выплатам")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
