package compensationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Compensation) (id string, err error)
	GetByID(id string) (rec *dbmodels.Compensation, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByAssignationID(assignationID string) (list []dbmodels.Compensation, err error)
	ListByEmployeeID(employeeID string) (list []dbmodels.Compensation, err error)
	UpdateStatusByAssignationID(assignationID string, status models.CompensationStatus) (affected int64, err error)
	DeleteByAssignationID(assignationID string) error
	GetTotalByStatus(status models.CompensationStatus) (total float64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Compensation) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Compensation, error) {
	rec := dbmodels.Compensation{}
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Compensation{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) ListByAssignationID(assignationID string) (list []dbmodels.Compensation, err error) {
	err = i.db.
		Where("assignation_id = ?", assignationID).
		Order("day").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByEmployeeID(employeeID string) (list []dbmodels.Compensation, err error) {
	err = i.db.
		Preload("Assignation.Mission").
		Where("employee_id = ?", employeeID).
		Order("day").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatusByAssignationID(assignationID string, status models.CompensationStatus) (affected int64, err error) {
	tx := i.db.
		Model(&dbmodels.Compensation{}).
		Where("assignation_id = ?", assignationID).
		Update("status", status)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (i impl) DeleteByAssignationID(assignationID string) error {
	return i.db.
		Where("assignation_id = ?", assignationID).
		Delete(&dbmodels.Compensation{}).
		Error
}

// GetTotalByStatus - сумма суточных по всем назначениям в заданном статусе.
func (i impl) GetTotalByStatus(status models.CompensationStatus) (total float64, err error) {
	err = i.db.
		Model(&dbmodels.Compensation{}).
		Select("COALESCE(SUM(transport + breakfast + lunch + dinner + accommodation), 0)").
		Where("status = ?", status).
		Scan(&total).
		Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
