package employeeprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"hr-office-backend/db"
	employeestore "hr-office-backend/lib/dicts/employee/store"
	"hr-office-backend/models"
	dictapimodels "hr-office-backend/models/api/dict"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.EmployeeData) (id string, err error)
	Update(id string, request dictapimodels.EmployeeData) error
	Get(id string) (item dictapimodels.EmployeeView, err error)
	GetRec(id string) (rec *dbmodels.Employee, err error)
	List() (list []dictapimodels.EmployeeView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Create(request dictapimodels.EmployeeData) (id string, err error) {
	existing, err := i.store.GetByEmail(request.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.Wrap(models.ErrBadRequest, "сотрудник с такой почтой уже существует")
	}
	rec := dbmodels.Employee{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Role:      request.Role,
		JobTitle:  request.JobTitle,
		Grade:     request.Grade,
	}
	if rec.Role == "" {
		rec.Role = models.UserRoleEmployee
	}
	if request.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			return "", errors.Wrap(err, "ошибка хеширования пароля")
		}
		rec.PasswordHash = string(hash)
	}
	if request.DepartmentID != "" {
		rec.DepartmentID = &request.DepartmentID
	}
	if request.SuperiorID != "" {
		rec.SuperiorID = &request.SuperiorID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("rec_id", id).
		WithField("email", request.Email).
		Info("создан сотрудник")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.EmployeeData) error {
	updMap := map[string]interface{}{
		"first_name": request.FirstName,
		"last_name":  request.LastName,
		"job_title":  request.JobTitle,
		"grade":      request.Grade,
	}
	if request.Role != "" {
		updMap["role"] = request.Role
	}
	if request.DepartmentID != "" {
		updMap["department_id"] = request.DepartmentID
	}
	if request.SuperiorID != "" {
		updMap["superior_id"] = request.SuperiorID
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлен сотрудник")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.EmployeeView, err error) {
	rec, err := i.GetRec(id)
	if err != nil {
		return dictapimodels.EmployeeView{}, err
	}
	return dictapimodels.EmployeeConvert(*rec), nil
}

func (i impl) GetRec(id string) (rec *dbmodels.Employee, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "сотрудник не найден")
	}
	return rec, nil
}

func (i impl) List() (list []dictapimodels.EmployeeView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.EmployeeConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален сотрудник")
	return nil
}
