package recruitmentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-office-backend/models"
	recruitmentapimodels "hr-office-backend/models/api/recruitment"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RecruitmentRequest) (id string, err error)
	GetByID(id string) (rec *dbmodels.RecruitmentRequest, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter recruitmentapimodels.RrFilter) (list []dbmodels.RecruitmentRequest, err error)
	ListCount(filter recruitmentapimodels.RrFilter) (count int64, err error)
	ListByStatus(status models.RequestStatus) (list []dbmodels.RecruitmentRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RecruitmentRequest) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.RecruitmentRequest, error) {
	rec := dbmodels.RecruitmentRequest{}
	err := i.db.
		Preload("Requester").
		Preload("Department").
		Preload("Approvals.Approver.Department").
		Preload("Attachments").
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
		Model(&dbmodels.RecruitmentRequest{}).
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
	rec := dbmodels.RecruitmentRequest{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.Delete(&rec).Error
}

func (i impl) List(filter recruitmentapimodels.RrFilter) (list []dbmodels.RecruitmentRequest, err error) {
	tx := i.getListTx(filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	err = tx.
		Preload("Requester").
		Preload("Department").
		Preload("Approvals.Approver.Department").
		Order("recruitment_requests.created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter recruitmentapimodels.RrFilter) (count int64, err error) {
	err = i.getListTx(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListByStatus(status models.RequestStatus) (list []dbmodels.RecruitmentRequest, err error) {
	err = i.db.
		Preload("Requester").
		Preload("Approvals.Approver").
		Where("status = ?", status).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) getListTx(filter recruitmentapimodels.RrFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.RecruitmentRequest{})
	if len(filter.Statuses) > 0 {
		tx = tx.Where("recruitment_requests.status IN ?", filter.Statuses)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("recruitment_requests.position_title ILIKE ? OR recruitment_requests.contract_type ILIKE ?", like, like)
	}
	if filter.ApproverID != "" {
		// заявки, ожидающие действия указанного согласующего:
		// его этап не завершен и перед ним нет незавершенных этапов
		tx = tx.
			Joins("JOIN recruitment_approvals ra ON ra.request_id = recruitment_requests.id").
			Where("ra.approver_id = ?", filter.ApproverID).
			Where("ra.status = ?", models.ApprovalStatusAwaiting).
			Where(`NOT EXISTS (
				SELECT 1 FROM recruitment_approvals prev
				WHERE prev.request_id = recruitment_requests.id
					AND prev.status = ?
					AND prev.approval_order < ra.approval_order)`, models.ApprovalStatusAwaiting)
	}
	return tx
}
