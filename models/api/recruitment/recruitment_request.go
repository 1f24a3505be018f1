package recruitmentapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-office-backend/models"
	apimodels "hr-office-backend/models/api"
	dbmodels "hr-office-backend/models/db"
)

type RecruitmentRequestData struct {
	PositionTitle   string `json:"position_title"`   // название позиции
	DepartmentID    string `json:"department_id"`    // ид подразделения
	ContractType    string `json:"contract_type"`    // тип контракта
	OpenedPositions int    `json:"opened_positions"` // кол-во открытых позиций
	Justification   string `json:"justification"`    // обоснование найма
}

func (r RecruitmentRequestData) Validate() error {
	if r.PositionTitle == "" {
		return errors.New("не указано название позиции")
	}
	if r.OpenedPositions <= 0 {
		return errors.New("не указано количество вакантных позиций")
	}
	return nil
}

type RecruitmentRequestCreateData struct {
	RecruitmentRequestData
	ApproverIDs []string `json:"approver_ids"` // цепочка согласующих, в порядке действий
}

func (r RecruitmentRequestCreateData) Validate() error {
	if err := r.RecruitmentRequestData.Validate(); err != nil {
		return err
	}
	if len(r.ApproverIDs) == 0 {
		return errors.New("не указана цепочка согласования")
	}
	return nil
}

type RecruitmentRequestEditData struct {
	RecruitmentRequestData
}

type RrFilter struct {
	apimodels.Pagination
	Statuses   []models.RequestStatus `json:"statuses"`
	ApproverID string                 `json:"approver_id"` // заявки, ожидающие действия согласующего
	Search     string                 `json:"search"`
}

type RecruitmentRequestView struct {
	RecruitmentRequestData
	ID             string               `json:"id"`
	RequesterID    string               `json:"requester_id"`
	RequesterName  string               `json:"requester_name"`
	DepartmentName string               `json:"department_name"`
	Status         models.RequestStatus `json:"status"`
	CreationDate   time.Time            `json:"creation_date"`
	UpdateDate     time.Time            `json:"update_date"`
	Approvals      []ApprovalStepView   `json:"approvals"`
	CurrentOrder   int                  `json:"current_order"` // этап, за которым очередь
	IsLastStep     bool                 `json:"is_last_step"`
}

func RecruitmentRequestConvert(rec dbmodels.RecruitmentRequest) RecruitmentRequestView {
	result := RecruitmentRequestView{
		RecruitmentRequestData: RecruitmentRequestData{
			PositionTitle:   rec.PositionTitle,
			ContractType:    rec.ContractType,
			OpenedPositions: rec.OpenedPositions,
			Justification:   rec.Justification,
		},
		ID:            rec.ID,
		RequesterID:   rec.RequesterID,
		Status:        rec.Status,
		CreationDate:  rec.CreatedAt,
		UpdateDate:    rec.UpdatedAt,
	}
	if rec.DepartmentID != nil {
		result.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	if rec.Requester != nil {
		result.RequesterName = rec.Requester.GetFullName()
	}
	approvals := []ApprovalStepView{}
	for _, step := range rec.Approvals {
		approvals = append(approvals, ApprovalStepConvert(step))
	}
	result.Approvals = approvals
	isLast, step := rec.GetCurrentApprovalStep()
	if step != nil {
		result.CurrentOrder = step.ApprovalOrder
		result.IsLastStep = isLast
	}
	return result
}
