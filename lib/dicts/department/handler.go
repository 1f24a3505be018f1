package departmentprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-office-backend/db"
	departmentstore "hr-office-backend/lib/dicts/department/store"
	"hr-office-backend/models"
	dictapimodels "hr-office-backend/models/api/dict"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id string, err error)
	Update(id string, request dictapimodels.DepartmentData) error
	Get(id string) (item dictapimodels.DepartmentView, err error)
	List() (list []dictapimodels.DepartmentView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: departmentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store departmentstore.Provider
}

func (i impl) Create(request dictapimodels.DepartmentData) (id string, err error) {
	rec := dbmodels.Department{
		Name: request.Name,
	}
	if request.ParentID != "" {
		rec.ParentID = &request.ParentID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("создано подразделение")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.DepartmentData) error {
	updMap := map[string]interface{}{
		"name": request.Name,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлено подразделение")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.DepartmentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, errors.Wrap(models.ErrNotFound, "подразделение не найдено")
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.DepartmentConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удалено подразделение")
	return nil
}
