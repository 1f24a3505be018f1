package commentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Comment) (id string, err error)
	GetByID(id string) (rec *dbmodels.Comment, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListByRequestID(requestID string) (list []dbmodels.Comment, err error)
	ListByAssignationID(assignationID string) (list []dbmodels.Comment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Comment) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Comment, error) {
	rec := dbmodels.Comment{}
	err := i.db.
		Preload("Author").
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
		Model(&dbmodels.Comment{}).
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
	rec := dbmodels.Comment{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) ListByRequestID(requestID string) (list []dbmodels.Comment, err error) {
	err = i.db.
		Preload("Author").
		Where("request_id = ?", requestID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByAssignationID(assignationID string) (list []dbmodels.Comment, err error) {
	err = i.db.
		Preload("Author").
		Where("assignation_id = ?", assignationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
