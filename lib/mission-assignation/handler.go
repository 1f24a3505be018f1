package assignationhandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-office-backend/db"
	employeestore "hr-office-backend/lib/dicts/employee/store"
	missionstore "hr-office-backend/lib/dicts/mission/store"
	transportstore "hr-office-backend/lib/dicts/transport/store"
	pdfexport "hr-office-backend/lib/export/pdf"
	assignationstore "hr-office-backend/lib/mission-assignation/store"
	validationstore "hr-office-backend/lib/mission-validation/store"
	"hr-office-backend/lib/notification"
	"hr-office-backend/lib/smtp"
	"hr-office-backend/models"
	missionapimodels "hr-office-backend/models/api/mission"
	dbmodels "hr-office-backend/models/db"
	wsmodels "hr-office-backend/models/ws"
)

type Provider interface {
	Create(data missionapimodels.AssignationCreateData) (id string, err error)
	GetByID(id string) (item missionapimodels.AssignationView, err error)
	Update(id string, data missionapimodels.AssignationData) error
	Delete(id string) error
	List(filter missionapimodels.AssignationFilter) (list []missionapimodels.AssignationView, rowCount int64, err error)
	GenerateOrder(id string) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          assignationstore.NewInstance(db.DB),
		employeeStore:  employeestore.NewInstance(db.DB),
		missionStore:   missionstore.NewInstance(db.DB),
		transportStore: transportstore.NewInstance(db.DB),
	}
}

type impl struct {
	store          assignationstore.Provider
	employeeStore  employeestore.Provider
	missionStore   missionstore.Provider
	transportStore transportstore.Provider
}

func (i impl) Create(data missionapimodels.AssignationCreateData) (id string, err error) {
	logger := log.
		WithField("employee_id", data.EmployeeID).
		WithField("mission_id", data.MissionID)
	if err = data.Validate(); err != nil {
		return "", errors.Wrap(models.ErrBadRequest, err.Error())
	}
	if err = i.checkDependency(data); err != nil {
		return "", err
	}
	duplicate, err := i.store.GetByEmployeeAndMission(data.EmployeeID, data.MissionID)
	if err != nil {
		return "", err
	}
	if duplicate != nil {
		return "", errors.Wrap(models.ErrBadRequest, "сотрудник уже назначен на эту командировку")
	}
	rec := dbmodels.MissionAssignation{
		EmployeeID:    data.EmployeeID,
		MissionID:     data.MissionID,
		DepartureDate: data.DepartureDate,
		ReturnDate:    data.ReturnDate,
		Duration:      dbmodels.DurationDays(data.DepartureDate, data.ReturnDate),
	}
	if data.TransportID != "" {
		rec.TransportID = &data.TransportID
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := assignationstore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			logger.WithError(err).Error("ошибка создания назначения на командировку")
			return err
		}
		rec.BaseModel.ID = id
		return i.createTx(validationstore.NewInstance(tx), tx, rec, data)
	})
	if err != nil {
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("создано назначение на командировку")
	created, err := i.store.GetByID(id)
	if err == nil && created != nil {
		if _, row := created.GetCurrentValidation(); row != nil {
			NotifyValidator(*created, row)
		}
	}
	return id, nil
}

// createTx создает цепочку валидации и, если задана дневная шкала, по строке
// компенсации на каждый день командировки. Все в той же транзакции, что и
// само назначение.
func (i impl) createTx(valStore validationstore.Provider, tx *gorm.DB, rec dbmodels.MissionAssignation, data missionapimodels.AssignationCreateData) error {
	validators := []struct {
		role       models.ValidatorRole
		employeeID string
	}{
		{models.ValidatorRoleDirector, data.DirectorID},
		{models.ValidatorRoleDRH, data.DRHID},
	}
	for _, v := range validators {
		_, err := valStore.Create(dbmodels.MissionValidation{
			AssignationID: rec.ID,
			ValidatorRole: v.role,
			ValidatorID:   v.employeeID,
			Status:        models.ApprovalStatusAwaiting,
		})
		if err != nil {
			return errors.Wrapf(err, "ошибка создания этапа валидации (%v)", v.role)
		}
	}
	if data.Scale == nil {
		return nil
	}
	for _, comp := range BuildCompensations(rec, *data.Scale) {
		err := tx.Save(&comp).Error
		if err != nil {
			return errors.Wrap(err, "ошибка генерации компенсаций")
		}
	}
	return nil
}

// BuildCompensations раскладывает дневную шкалу на строки компенсаций,
// по одной на каждый день командировки.
func BuildCompensations(rec dbmodels.MissionAssignation, scale missionapimodels.DailyScale) []dbmodels.Compensation {
	list := make([]dbmodels.Compensation, 0, rec.Duration)
	for day := 0; day < rec.Duration; day++ {
		list = append(list, dbmodels.Compensation{
			AssignationID: rec.ID,
			EmployeeID:    rec.EmployeeID,
			Day:           rec.DepartureDate.AddDate(0, 0, day),
			Transport:     scale.Transport,
			Breakfast:     scale.Breakfast,
			Lunch:         scale.Lunch,
			Dinner:        scale.Dinner,
			Accommodation: scale.Accommodation,
			Status:        models.CompensationNotPaid,
		})
	}
	return list
}

func (i impl) checkDependency(data missionapimodels.AssignationCreateData) error {
	employee, err := i.employeeStore.GetByID(data.EmployeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return errors.Wrap(models.ErrBadRequest, "сотрудник не найден")
	}
	mission, err := i.missionStore.GetByID(data.MissionID)
	if err != nil {
		return err
	}
	if mission == nil {
		return errors.Wrap(models.ErrBadRequest, "командировка не найдена")
	}
	if data.TransportID != "" {
		transport, err := i.transportStore.GetByID(data.TransportID)
		if err != nil {
			return err
		}
		if transport == nil {
			return errors.Wrap(models.ErrBadRequest, "транспорт не найден")
		}
	}
	for _, validatorID := range []string{data.DirectorID, data.DRHID} {
		validator, err := i.employeeStore.GetByID(validatorID)
		if err != nil {
			return err
		}
		if validator == nil {
			return errors.Wrapf(models.ErrBadRequest, "валидатор (%s) не найден", validatorID)
		}
	}
	return nil
}

func (i impl) GetByID(id string) (item missionapimodels.AssignationView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return missionapimodels.AssignationView{}, err
	}
	return missionapimodels.AssignationConvert(*rec), nil
}

func (i impl) Update(id string, data missionapimodels.AssignationData) error {
	logger := log.WithField("rec_id", id)
	if err := data.Validate(); err != nil {
		return errors.Wrap(models.ErrBadRequest, err.Error())
	}
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.IsValidated != nil {
		return errors.Wrap(models.ErrInvalidState, "назначение уже прошло валидацию")
	}
	updMap := map[string]interface{}{
		"departure_date": data.DepartureDate,
		"return_date":    data.ReturnDate,
		"duration":       dbmodels.DurationDays(data.DepartureDate, data.ReturnDate),
	}
	if data.TransportID != "" {
		updMap["transport_id"] = data.TransportID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления назначения")
		return err
	}
	logger.Info("обновлено назначение на командировку")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.IsValidated != nil && *rec.IsValidated == models.AssignationValidated {
		return errors.Wrap(models.ErrInvalidState, "валидированное назначение не удаляется")
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления назначения")
		return err
	}
	logger.Info("удалено назначение на командировку")
	return nil
}

func (i impl) List(filter missionapimodels.AssignationFilter) (list []missionapimodels.AssignationView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) >= rowCount {
		return []missionapimodels.AssignationView{}, rowCount, nil
	}
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка назначений")
		return nil, 0, err
	}
	result := make([]missionapimodels.AssignationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, missionapimodels.AssignationConvert(rec))
	}
	return result, rowCount, nil
}

// GenerateOrder формирует командировочное предписание. Доступно только
// для полностью валидированных назначений.
func (i impl) GenerateOrder(id string) (pdfFile []byte, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	if rec.IsValidated == nil || *rec.IsValidated != models.AssignationValidated {
		return nil, errors.Wrap(models.ErrInvalidState, "назначение еще не валидировано")
	}
	pdfFile, err = pdfexport.GenerateMissionOrder(*rec)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка формирования командировочного предписания")
		return nil, err
	}
	return pdfFile, nil
}

func (i impl) getRec(id string) (rec *dbmodels.MissionAssignation, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка получения назначения")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "назначение не найдено")
	}
	return rec, nil
}

// NotifyValidator уведомляет валидатора, за которым очередь. Используется
// и при создании назначения, и после прохождения первого этапа.
func NotifyValidator(rec dbmodels.MissionAssignation, row *dbmodels.MissionValidation) {
	missionName := ""
	if rec.Mission != nil {
		missionName = rec.Mission.Name
	}
	msg := fmt.Sprintf("Назначение на командировку «%s» ожидает вашей валидации", missionName)
	if notification.Instance != nil {
		notification.Instance.Notify(row.ValidatorID, wsmodels.CodeApprovalPending, msg)
	}
	if row.Validator == nil || row.Validator.Email == "" || smtp.Instance == nil {
		return
	}
	err := smtp.Instance.SendEMail(row.Validator.Email, msg, "Валидация командировки")
	if err != nil {
		log.
			WithField("rec_id", rec.ID).
			WithError(err).
			Error("ошибка отправки письма валидатору")
	}
}
