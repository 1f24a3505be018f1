package approvalhandler

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-office-backend/db"
	employeestore "hr-office-backend/lib/dicts/employee/store"
	approvalstore "hr-office-backend/lib/recruitment-approval/store"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Save(requestID string, approverIDs []string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         approvalstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:         approvalstore.NewInstance(tx),
		employeeStore: employeestore.NewInstance(tx),
	}
}

type impl struct {
	store         approvalstore.Provider
	employeeStore employeestore.Provider
}

// Save перезаписывает цепочку согласования заявки. Порядок согласующих в
// approverIDs определяет порядок этапов, каждый согласующий в цепочке один раз.
func (i impl) Save(requestID string, approverIDs []string) error {
	approversMap := map[string]bool{}
	for _, approverID := range approverIDs {
		rec, err := i.employeeStore.GetByID(approverID)
		if err != nil {
			return err
		}
		if rec == nil {
			return errors.Wrapf(models.ErrBadRequest, "согласующий (%s) не найден в справочнике сотрудников", approverID)
		}
		if approversMap[approverID] {
			return errors.Wrapf(models.ErrBadRequest, "согласующий (%s) указан в цепочке дважды", approverID)
		}
		approversMap[approverID] = true
	}
	err := i.store.DeleteByRequestID(requestID)
	if err != nil {
		return err
	}
	for idx, approverID := range approverIDs {
		rec := dbmodels.RecruitmentApproval{
			RequestID:     requestID,
			ApproverID:    approverID,
			ApprovalOrder: idx + 1,
			Status:        models.ApprovalStatusAwaiting,
		}
		_, err = i.store.Create(rec)
		if err != nil {
			return errors.Wrapf(err, "ошибка сохранения цепочки согласования, этап %v", idx+1)
		}
	}
	return nil
}
