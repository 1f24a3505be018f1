package validationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.MissionValidation) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByAssignationID(assignationID string) (list []dbmodels.MissionValidation, err error)
	DeleteByAssignationID(assignationID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MissionValidation) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.MissionValidation{}).
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

func (i impl) ListByAssignationID(assignationID string) (list []dbmodels.MissionValidation, err error) {
	err = i.db.
		Preload("Validator").
		Where("assignation_id = ?", assignationID).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByAssignationID(assignationID string) error {
	return i.db.
		Where("assignation_id = ?", assignationID).
		Delete(&dbmodels.MissionValidation{}).
		Error
}
