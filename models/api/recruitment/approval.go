package recruitmentapimodels

import (
	"encoding/base64"
	"time"

	"github.com/pkg/errors"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

type ApprovalStepView struct {
	ID                 string                `json:"id"`
	ApproverID         string                `json:"approver_id"`
	ApproverName       string                `json:"approver_name"`
	ApproverDepartment string                `json:"approver_department"`
	ApproverEmail      string                `json:"approver_email"`
	ApprovalOrder      int                   `json:"approval_order"`
	Status             models.ApprovalStatus `json:"status"`
	Comment            string                `json:"comment,omitempty"`
	Signature          string                `json:"signature,omitempty"` // base64
	ApprovalDate       *time.Time            `json:"approval_date,omitempty"`
}

func ApprovalStepConvert(rec dbmodels.RecruitmentApproval) ApprovalStepView {
	result := ApprovalStepView{
		ID:            rec.ID,
		ApproverID:    rec.ApproverID,
		ApprovalOrder: rec.ApprovalOrder,
		Status:        rec.Status,
		Comment:       rec.Comment,
		ApprovalDate:  rec.ApprovalDate,
	}
	if rec.Approver != nil {
		result.ApproverName = rec.Approver.GetFullName()
		result.ApproverEmail = rec.Approver.Email
		if rec.Approver.Department != nil {
			result.ApproverDepartment = rec.Approver.Department.Name
		}
	}
	if len(rec.Signature) > 0 {
		result.Signature = base64.StdEncoding.EncodeToString(rec.Signature)
	}
	return result
}

// DecisionData - тело запроса согласования/отклонения этапа.
type DecisionData struct {
	Comment   string `json:"comment"`
	Signature string `json:"signature"` // base64
}

func (d DecisionData) GetSignature() ([]byte, error) {
	if d.Signature == "" {
		return nil, nil
	}
	sign, err := base64.StdEncoding.DecodeString(d.Signature)
	if err != nil {
		return nil, errors.New("подпись не является корректным base64")
	}
	return sign, nil
}

type StatusData struct {
	Status models.RequestStatus `json:"status"`
}

func (s StatusData) Validate() error {
	return s.Status.Validate()
}
