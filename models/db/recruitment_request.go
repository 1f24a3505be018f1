package dbmodels

import (
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-office-backend/models"
)

type RecruitmentRequest struct {
	BaseModel
	RequesterID     string    `gorm:"type:varchar(36)"`
	Requester       *Employee `gorm:"foreignKey:RequesterID"`
	PositionTitle   string    `gorm:"type:varchar(255)"`
	DepartmentID    *string   `gorm:"type:varchar(36)"`
	Department      *Department
	ContractType    string `gorm:"type:varchar(100)"`
	OpenedPositions int
	Justification   string
	Status          models.RequestStatus `gorm:"type:varchar(100)"`
	Approvals       []RecruitmentApproval `gorm:"foreignKey:RequestID"`
	Comments        []Comment             `gorm:"foreignKey:RequestID"`
	Attachments     []FileStorage         `gorm:"foreignKey:RequestID"`
}

// RecruitmentApproval - этап цепочки согласования заявки. Одна запись на пару
// (согласующий, заявка), порядок действий задает ApprovalOrder.
type RecruitmentApproval struct {
	BaseModel
	RequestID     string    `gorm:"type:varchar(36);uniqueIndex:idx_request_approver"`
	ApproverID    string    `gorm:"type:varchar(36);uniqueIndex:idx_request_approver"`
	Approver      *Employee `gorm:"foreignKey:ApproverID"`
	ApprovalOrder int
	Status        models.ApprovalStatus `gorm:"type:varchar(100)"`
	Comment       string
	Signature     []byte
	ApprovalDate  *time.Time
}

// GetCurrentApprovalStep возвращает этап, за которым сейчас очередь:
// незавершенный этап с минимальным ApprovalOrder. isLast=true, если после
// него незавершенных этапов не останется.
func (r RecruitmentRequest) GetCurrentApprovalStep() (isLast bool, step *RecruitmentApproval) {
	steps := make([]RecruitmentApproval, len(r.Approvals))
	copy(steps, r.Approvals)
	sort.Slice(steps, func(i, j int) bool {
		return steps[i].ApprovalOrder < steps[j].ApprovalOrder
	})
	pending := 0
	for idx := range steps {
		if steps[idx].Status == models.ApprovalStatusAwaiting {
			if step == nil {
				step = &steps[idx]
			}
			pending++
		}
	}
	return pending == 1, step
}

func (r *RecruitmentRequest) AfterDelete(tx *gorm.DB) (err error) {
	if r.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("request_id = ?", r.ID).Delete(&RecruitmentApproval{})
	tx.Clauses(clause.Returning{}).Where("request_id = ?", r.ID).Delete(&Comment{})
	return
}
