package assignationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	missionapimodels "hr-office-backend/models/api/mission"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.MissionAssignation) (id string, err error)
	GetByID(id string) (rec *dbmodels.MissionAssignation, err error)
	GetByEmployeeAndMission(employeeID, missionID string) (rec *dbmodels.MissionAssignation, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter missionapimodels.AssignationFilter) (list []dbmodels.MissionAssignation, err error)
	ListCount(filter missionapimodels.AssignationFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MissionAssignation) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.MissionAssignation, error) {
	rec := dbmodels.MissionAssignation{}
	err := i.db.
		Preload("Employee").
		Preload("Mission").
		Preload("Transport").
		Preload("Validations.Validator").
		Preload("Compensations").
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

func (i impl) GetByEmployeeAndMission(employeeID, missionID string) (*dbmodels.MissionAssignation, error) {
	rec := dbmodels.MissionAssignation{}
	err := i.db.
		Where("employee_id = ?", employeeID).
		Where("mission_id = ?", missionID).
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
		Model(&dbmodels.MissionAssignation{}).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.MissionAssignation{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) List(filter missionapimodels.AssignationFilter) (list []dbmodels.MissionAssignation, err error) {
	tx := i.getListTx(filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	err = tx.
		Preload("Employee").
		Preload("Mission").
		Preload("Transport").
		Preload("Validations.Validator").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter missionapimodels.AssignationFilter) (count int64, err error) {
	err = i.getListTx(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) getListTx(filter missionapimodels.AssignationFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.MissionAssignation{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.MissionID != "" {
		tx = tx.Where("mission_id = ?", filter.MissionID)
	}
	if filter.IsValidated != nil {
		tx = tx.Where("is_validated = ?", *filter.IsValidated)
	}
	return tx
}
