package expensetypeprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-office-backend/db"
	expensetypestore "hr-office-backend/lib/dicts/expense-type/store"
	"hr-office-backend/models"
	dictapimodels "hr-office-backend/models/api/dict"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.ExpenseTypeData) (id string, err error)
	Get(id string) (item dictapimodels.ExpenseTypeView, err error)
	GetRec(id string) (rec *dbmodels.ExpenseReportType, err error)
	List() (list []dictapimodels.ExpenseTypeView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: expensetypestore.NewInstance(db.DB),
	}
}

type impl struct {
	store expensetypestore.Provider
}

func (i impl) Create(request dictapimodels.ExpenseTypeData) (id string, err error) {
	rec := dbmodels.ExpenseReportType{
		Name: request.Name,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("создан тип расходов")
	return id, nil
}

func (i impl) Get(id string) (item dictapimodels.ExpenseTypeView, err error) {
	rec, err := i.GetRec(id)
	if err != nil {
		return dictapimodels.ExpenseTypeView{}, err
	}
	return dictapimodels.ExpenseTypeConvert(*rec), nil
}

func (i impl) GetRec(id string) (rec *dbmodels.ExpenseReportType, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "тип расходов не найден")
	}
	return rec, nil
}

func (i impl) List() (list []dictapimodels.ExpenseTypeView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.ExpenseTypeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.ExpenseTypeConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален тип расходов")
	return nil
}
