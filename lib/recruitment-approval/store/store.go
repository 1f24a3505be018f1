package approvalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RecruitmentApproval) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	DeleteByRequestID(requestID string) error
	ListByRequestID(requestID string) (list []dbmodels.RecruitmentApproval, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RecruitmentApproval) (id string, err error) {
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
		Model(&dbmodels.RecruitmentApproval{}).
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

func (i impl) DeleteByRequestID(requestID string) error {
	return i.db.
		Where("request_id = ?", requestID).
		Delete(&dbmodels.RecruitmentApproval{}).
		Error
}

func (i impl) ListByRequestID(requestID string) (list []dbmodels.RecruitmentApproval, err error) {
	err = i.db.
		Preload("Approver").
		Where("request_id = ?", requestID).
		Order("approval_order").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
