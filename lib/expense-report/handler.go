package expensehandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-office-backend/db"
	expensetypestore "hr-office-backend/lib/dicts/expense-type/store"
	expensestore "hr-office-backend/lib/expense-report/store"
	assignationstore "hr-office-backend/lib/mission-assignation/store"
	"hr-office-backend/lib/notification"
	"hr-office-backend/lib/smtp"
	"hr-office-backend/models"
	expenseapimodels "hr-office-backend/models/api/expense"
	dbmodels "hr-office-backend/models/db"
	wsmodels "hr-office-backend/models/ws"
)

type Provider interface {
	Create(data expenseapimodels.ExpenseReportData) (id string, err error)
	GetByID(id string) (item expenseapimodels.ExpenseReportView, err error)
	Update(id string, data expenseapimodels.ExpenseReportData) error
	Delete(id string) error
	ListByAssignationID(assignationID string) (list []expenseapimodels.ExpenseReportView, total float64, err error)
	GetStatusesByAssignationID(assignationID string) (statuses []models.ExpenseStatus, err error)
	Reimburse(assignationID string) (affected int64, err error)
	Queue(filter expenseapimodels.QueueFilter) (list []expenseapimodels.QueueItemView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            expensestore.NewInstance(db.DB),
		typeStore:        expensetypestore.NewInstance(db.DB),
		assignationStore: assignationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            expensestore.Provider
	typeStore        expensetypestore.Provider
	assignationStore assignationstore.Provider
}

func (i impl) Create(data expenseapimodels.ExpenseReportData) (id string, err error) {
	logger := log.WithField("assignation_id", data.AssignationID)
	if err = data.Validate(); err != nil {
		return "", errors.Wrap(models.ErrBadRequest, err.Error())
	}
	assignation, err := i.assignationStore.GetByID(data.AssignationID)
	if err != nil {
		return "", err
	}
	if assignation == nil {
		return "", errors.Wrap(models.ErrBadRequest, "назначение не найдено")
	}
	typeRec, err := i.typeStore.GetByID(data.TypeID)
	if err != nil {
		return "", err
	}
	if typeRec == nil {
		return "", errors.Wrap(models.ErrBadRequest, "тип расходов не найден")
	}
	rec := dbmodels.ExpenseReport{
		AssignationID: data.AssignationID,
		TypeID:        data.TypeID,
		Title:         data.Title,
		Description:   data.Description,
		Amount:        data.Amount,
		Status:        models.ExpensePending,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания строки расходов")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("создана строка расходов")
	return id, nil
}

func (i impl) GetByID(id string) (item expenseapimodels.ExpenseReportView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return expenseapimodels.ExpenseReportView{}, err
	}
	return expenseapimodels.ExpenseReportConvert(*rec), nil
}

func (i impl) Update(id string, data expenseapimodels.ExpenseReportData) error {
	logger := log.WithField("rec_id", id)
	if err := data.Validate(); err != nil {
		return errors.Wrap(models.ErrBadRequest, err.Error())
	}
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status == models.ExpenseReimbursed {
		return errors.Wrap(models.ErrInvalidState, "возмещенная строка расходов не редактируется")
	}
	updMap := map[string]interface{}{
		"type_id":     data.TypeID,
		"title":       data.Title,
		"description": data.Description,
		"amount":      data.Amount,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления строки расходов")
		return err
	}
	logger.Info("обновлена строка расходов")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status == models.ExpenseReimbursed {
		return errors.Wrap(models.ErrInvalidState, "возмещенная строка расходов не удаляется")
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления строки расходов")
		return err
	}
	logger.Info("удалена строка расходов")
	return nil
}

func (i impl) ListByAssignationID(assignationID string) (list []expenseapimodels.ExpenseReportView, total float64, err error) {
	recList, err := i.store.ListByAssignationID(assignationID)
	if err != nil {
		return nil, 0, err
	}
	result := make([]expenseapimodels.ExpenseReportView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, expenseapimodels.ExpenseReportConvert(rec))
		total += rec.Amount
	}
	return result, total, nil
}

// GetStatusesByAssignationID возвращает набор различных статусов строк
// расходов по назначению. Назначение возмещено целиком, когда набор
// состоит из единственного статуса "reimbursed".
func (i impl) GetStatusesByAssignationID(assignationID string) (statuses []models.ExpenseStatus, err error) {
	statuses, err = i.store.DistinctStatusesByAssignationID(assignationID)
	if err != nil {
		log.
			WithField("assignation_id", assignationID).
			WithError(err).
			Error("ошибка получения статусов расходов")
		return nil, err
	}
	return statuses, nil
}

// Reimburse возмещает все невозмещенные строки назначения. Операция
// идемпотентна: повторный вызов ничего не меняет и не шлет уведомлений.
func (i impl) Reimburse(assignationID string) (affected int64, err error) {
	logger := log.WithField("assignation_id", assignationID)
	assignation, err := i.assignationStore.GetByID(assignationID)
	if err != nil {
		return 0, err
	}
	if assignation == nil {
		return 0, errors.Wrap(models.ErrNotFound, "назначение не найдено")
	}
	affected, err = i.store.ReimburseByAssignationID(assignationID)
	if err != nil {
		logger.WithError(err).Error("ошибка возмещения расходов")
		return 0, err
	}
	if affected == 0 {
		statuses, err := i.store.DistinctStatusesByAssignationID(assignationID)
		if err != nil {
			return 0, err
		}
		if len(statuses) == 0 {
			return 0, errors.Wrap(models.ErrNotFound, "строки расходов по назначению не найдены")
		}
		// все строки уже возмещены, повторный вызов ничего не меняет
		logger.Info("нет строк для возмещения")
		return 0, nil
	}
	logger.
		WithField("lines", affected).
		Info("расходы возмещены")
	i.notifyEmployee(*assignation)
	return affected, nil
}

func (i impl) Queue(filter expenseapimodels.QueueFilter) (list []expenseapimodels.QueueItemView, rowCount int64, err error) {
	rowCount, err = i.store.QueueCount(filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) >= rowCount {
		return []expenseapimodels.QueueItemView{}, rowCount, nil
	}
	rows, err := i.store.Queue(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения очереди возмещения")
		return nil, 0, err
	}
	result := make([]expenseapimodels.QueueItemView, 0, len(rows))
	for _, row := range rows {
		result = append(result, expenseapimodels.QueueItemView{
			AssignationID: row.AssignationID,
			EmployeeName:  row.EmployeeName,
			MissionName:   row.MissionName,
			LinesCount:    row.LinesCount,
			TotalAmount:   row.TotalAmount,
		})
	}
	return result, rowCount, nil
}

func (i impl) getRec(id string) (rec *dbmodels.ExpenseReport, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка получения строки расходов")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "строка расходов не найдена")
	}
	return rec, nil
}

func (i impl) notifyEmployee(rec dbmodels.MissionAssignation) {
	missionName := ""
	if rec.Mission != nil {
		missionName = rec.Mission.Name
	}
	msg := fmt.Sprintf("Расходы по командировке «%s» возмещены", missionName)
	if notification.Instance != nil {
		notification.Instance.Notify(rec.EmployeeID, wsmodels.CodeExpenseReimbursed, msg)
	}
	if rec.Employee == nil || rec.Employee.Email == "" || smtp.Instance == nil {
		return
	}
	err := smtp.Instance.SendEMail(rec.Employee.Email, msg, "Возмещение расходов")
	if err != nil {
		log.
			WithField("rec_id", rec.ID).
			WithError(err).
			Error("ошибка отправки письма сотруднику")
	}
}
