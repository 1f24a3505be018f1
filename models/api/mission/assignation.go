package missionapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-office-backend/models"
	apimodels "hr-office-backend/models/api"
	dbmodels "hr-office-backend/models/db"
)

// DailyScale - дневная шкала суточных, по ней генерируются строки компенсаций
// на каждый день командировки.
type DailyScale struct {
	Transport     float64 `json:"transport"`
	Breakfast     float64 `json:"breakfast"`
	Lunch         float64 `json:"lunch"`
	Dinner        float64 `json:"dinner"`
	Accommodation float64 `json:"accommodation"`
}

func (s DailyScale) Validate() error {
	if s.Transport < 0 || s.Breakfast < 0 || s.Lunch < 0 || s.Dinner < 0 || s.Accommodation < 0 {
		return errors.New("суммы шкалы суточных не могут быть отрицательными")
	}
	return nil
}

type AssignationData struct {
	EmployeeID    string    `json:"employee_id"`
	MissionID     string    `json:"mission_id"`
	TransportID   string    `json:"transport_id"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
}

func (a AssignationData) Validate() error {
	if a.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if a.MissionID == "" {
		return errors.New("не указана командировка")
	}
	if a.DepartureDate.IsZero() || a.ReturnDate.IsZero() {
		return errors.New("не указаны даты командировки")
	}
	if a.ReturnDate.Before(a.DepartureDate) {
		return errors.New("дата возвращения раньше даты отъезда")
	}
	return nil
}

type AssignationCreateData struct {
	AssignationData
	DirectorID string      `json:"director_id"` // валидатор первого этапа
	DRHID      string      `json:"drh_id"`      // валидатор второго этапа
	Scale      *DailyScale `json:"daily_scale"` // если задана, генерируются компенсации
}

func (a AssignationCreateData) Validate() error {
	if err := a.AssignationData.Validate(); err != nil {
		return err
	}
	if a.DirectorID == "" || a.DRHID == "" {
		return errors.New("не указаны валидаторы командировки")
	}
	if a.Scale != nil {
		return a.Scale.Validate()
	}
	return nil
}

type AssignationFilter struct {
	apimodels.Pagination
	EmployeeID  string `json:"employee_id"`
	MissionID   string `json:"mission_id"`
	IsValidated *int   `json:"is_validated"`
}

type AssignationView struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	EmployeeName  string           `json:"employee_name"`
	MissionID     string           `json:"mission_id"`
	MissionName   string           `json:"mission_name"`
	TransportID   string           `json:"transport_id,omitempty"`
	TransportType string           `json:"transport_type,omitempty"`
	DepartureDate time.Time        `json:"departure_date"`
	ReturnDate    time.Time        `json:"return_date"`
	Duration      int              `json:"duration"`
	IsValidated   *int             `json:"is_validated"`
	Validations   []ValidationView `json:"validations"`
}

func AssignationConvert(rec dbmodels.MissionAssignation) AssignationView {
	result := AssignationView{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		MissionID:     rec.MissionID,
		DepartureDate: rec.DepartureDate,
		ReturnDate:    rec.ReturnDate,
		Duration:      rec.Duration,
		IsValidated:   rec.IsValidated,
	}
	if rec.Employee != nil {
		result.EmployeeName = rec.Employee.GetFullName()
	}
	if rec.Mission != nil {
		result.MissionName = rec.Mission.Name
	}
	if rec.TransportID != nil {
		result.TransportID = *rec.TransportID
	}
	if rec.Transport != nil {
		result.TransportType = rec.Transport.Type
	}
	validations := []ValidationView{}
	for _, row := range rec.Validations {
		validations = append(validations, ValidationConvert(row))
	}
	result.Validations = validations
	return result
}

type ValidationView struct {
	ID             string                `json:"id"`
	ValidatorRole  models.ValidatorRole  `json:"validator_role"`
	ValidatorID    string                `json:"validator_id"`
	ValidatorName  string                `json:"validator_name"`
	ValidatorEmail string                `json:"validator_email"`
	Status         models.ApprovalStatus `json:"status"`
	Comment        string                `json:"comment,omitempty"`
	ValidationDate *time.Time            `json:"validation_date,omitempty"`
}

func ValidationConvert(rec dbmodels.MissionValidation) ValidationView {
	result := ValidationView{
		ID:             rec.ID,
		ValidatorRole:  rec.ValidatorRole,
		ValidatorID:    rec.ValidatorID,
		Status:         rec.Status,
		Comment:        rec.Comment,
		ValidationDate: rec.ValidationDate,
	}
	if rec.Validator != nil {
		result.ValidatorName = rec.Validator.GetFullName()
		result.ValidatorEmail = rec.Validator.Email
	}
	return result
}

type DecisionData struct {
	Comment string `json:"comment"`
}
