package compensationhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-office-backend/db"
	compensationstore "hr-office-backend/lib/compensation/store"
	xlsexport "hr-office-backend/lib/export/xls"
	"hr-office-backend/models"
	compensationapimodels "hr-office-backend/models/api/compensation"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(data compensationapimodels.CompensationData) (id string, err error)
	ListByAssignationID(assignationID string) (list []compensationapimodels.CompensationView, total float64, err error)
	GetByEmployeeID(employeeID string) (list []compensationapimodels.EmployeeCompensationView, err error)
	UpdateStatus(id string, status models.CompensationStatus) error
	UpdateStatusByAssignationID(assignationID string, status models.CompensationStatus) error
	GetTotals() (view compensationapimodels.TotalsView, err error)
	ExportByAssignationID(assignationID string) (xlsFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: compensationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store compensationstore.Provider
}

func (i impl) Create(data compensationapimodels.CompensationData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", errors.Wrap(models.ErrBadRequest, err.Error())
	}
	rec := dbmodels.Compensation{
		AssignationID: data.AssignationID,
		EmployeeID:    data.EmployeeID,
		Day:           data.Day,
		Transport:     data.Transport,
		Breakfast:     data.Breakfast,
		Lunch:         data.Lunch,
		Dinner:        data.Dinner,
		Accommodation: data.Accommodation,
		Status:        models.CompensationNotPaid,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("assignation_id", data.AssignationID).
		WithField("rec_id", id).
		Info("добавлена компенсация")
	return id, nil
}

func (i impl) ListByAssignationID(assignationID string) (list []compensationapimodels.CompensationView, total float64, err error) {
	recList, err := i.store.ListByAssignationID(assignationID)
	if err != nil {
		return nil, 0, err
	}
	result := make([]compensationapimodels.CompensationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, compensationapimodels.CompensationConvert(rec))
	}
	return result, dbmodels.TotalAmount(recList), nil
}

// GetByEmployeeID группирует дневные компенсации сотрудника по назначениям
// и считает итог по каждому назначению.
func (i impl) GetByEmployeeID(employeeID string) (list []compensationapimodels.EmployeeCompensationView, err error) {
	recList, err := i.store.ListByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	byAssignation := map[string]int{}
	result := []compensationapimodels.EmployeeCompensationView{}
	for _, rec := range recList {
		idx, ok := byAssignation[rec.AssignationID]
		if !ok {
			view := compensationapimodels.EmployeeCompensationView{
				AssignationID: rec.AssignationID,
				EmployeeID:    rec.EmployeeID,
				Compensations: []compensationapimodels.CompensationView{},
			}
			if rec.Assignation != nil {
				view.MissionID = rec.Assignation.MissionID
				view.Duration = rec.Assignation.Duration
				if rec.Assignation.Mission != nil {
					view.MissionName = rec.Assignation.Mission.Name
				}
			}
			result = append(result, view)
			idx = len(result) - 1
			byAssignation[rec.AssignationID] = idx
		}
		result[idx].Compensations = append(result[idx].Compensations, compensationapimodels.CompensationConvert(rec))
		result[idx].TotalAmount += rec.DayAmount()
	}
	return result, nil
}

func (i impl) UpdateStatus(id string, status models.CompensationStatus) error {
	logger := log.
		WithField("rec_id", id).
		WithField("new_status", status)
	if err := status.Validate(); err != nil {
		return errors.Wrap(models.ErrBadRequest, err.Error())
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "компенсация не найдена")
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления статуса компенсации")
		return err
	}
	logger.Info("статус компенсации обновлен")
	return nil
}

// UpdateStatusByAssignationID переводит все дневные компенсации назначения
// в заданный статус разом.
func (i impl) UpdateStatusByAssignationID(assignationID string, status models.CompensationStatus) error {
	logger := log.
		WithField("assignation_id", assignationID).
		WithField("new_status", status)
	if err := status.Validate(); err != nil {
		return errors.Wrap(models.ErrBadRequest, err.Error())
	}
	affected, err := i.store.UpdateStatusByAssignationID(assignationID, status)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления статусов компенсаций")
		return err
	}
	if affected == 0 {
		return errors.Wrap(models.ErrNotFound, "компенсации по назначению не найдены")
	}
	logger.WithField("row_count", affected).Info("статусы компенсаций обновлены")
	return nil
}

// ExportByAssignationID выгружает дневные компенсации назначения в xlsx.
func (i impl) ExportByAssignationID(assignationID string) (xlsFile []byte, err error) {
	recList, err := i.store.ListByAssignationID(assignationID)
	if err != nil {
		return nil, err
	}
	if len(recList) == 0 {
		return nil, errors.Wrap(models.ErrNotFound, "компенсации по назначению не найдены")
	}
	buf, err := xlsexport.Instance.ExportCompensationList(recList)
	if err != nil {
		log.
			WithField("assignation_id", assignationID).
			WithError(err).
			Error("ошибка выгрузки компенсаций в xlsx")
		return nil, err
	}
	return buf.Bytes(), nil
}

func (i impl) GetTotals() (view compensationapimodels.TotalsView, err error) {
	paid, err := i.store.GetTotalByStatus(models.CompensationPaid)
	if err != nil {
		return view, err
	}
	notPaid, err := i.store.GetTotalByStatus(models.CompensationNotPaid)
	if err != nil {
		return view, err
	}
	return compensationapimodels.TotalsView{
		PaidAmount:    paid,
		NotPaidAmount: notPaid,
	}, nil
}
