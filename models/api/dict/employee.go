package dictapimodels

import (
	"github.com/pkg/errors"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

type EmployeeData struct {
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Password     string          `json:"password,omitempty"` // только при создании
	Role         models.UserRole `json:"role"`
	JobTitle     string          `json:"job_title"`
	Grade        string          `json:"grade"`
	DepartmentID string          `json:"department_id"`
	SuperiorID   string          `json:"superior_id"`
}

func (e EmployeeData) Validate() error {
	if e.LastName == "" {
		return errors.New("не указана фамилия сотрудника")
	}
	if e.Email == "" {
		return errors.New("не указана почта сотрудника")
	}
	if e.Role == "" {
		return nil
	}
	return e.Role.Validate()
}

type EmployeeView struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	JobTitle       string          `json:"job_title"`
	Grade          string          `json:"grade"`
	DepartmentID   string          `json:"department_id"`
	DepartmentName string          `json:"department_name"`
	SuperiorID     string          `json:"superior_id"`
	SuperiorName   string          `json:"superior_name"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	result := EmployeeView{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		FullName:  rec.GetFullName(),
		Email:     rec.Email,
		Role:      rec.Role,
		JobTitle:  rec.JobTitle,
		Grade:     rec.Grade,
	}
	if rec.DepartmentID != nil {
		result.DepartmentID = *rec.DepartmentID
	}
	if rec.Department != nil {
		result.DepartmentName = rec.Department.Name
	}
	if rec.SuperiorID != nil {
		result.SuperiorID = *rec.SuperiorID
	}
	if rec.Superior != nil {
		result.SuperiorName = rec.Superior.GetFullName()
	}
	return result
}
