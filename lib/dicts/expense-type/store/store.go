package expensetypestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ExpenseReportType) (id string, err error)
	GetByID(id string) (rec *dbmodels.ExpenseReportType, err error)
	Delete(id string) error
	List() (list []dbmodels.ExpenseReportType, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ExpenseReportType) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ExpenseReportType, error) {
	rec := dbmodels.ExpenseReportType{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.ExpenseReportType{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) List() (list []dbmodels.ExpenseReportType, err error) {
	list = []dbmodels.ExpenseReportType{}
	err = i.db.
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
