package dictapimodels

import (
	"github.com/pkg/errors"
	dbmodels "hr-office-backend/models/db"
)

type DepartmentData struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

func (d DepartmentData) Validate() error {
	if d.Name == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}

type DepartmentView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	result := DepartmentView{
		ID:   rec.ID,
		Name: rec.Name,
	}
	if rec.ParentID != nil {
		result.ParentID = *rec.ParentID
	}
	return result
}
