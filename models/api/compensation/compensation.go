package compensationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

type CompensationData struct {
	AssignationID string    `json:"assignation_id"`
	EmployeeID    string    `json:"employee_id"`
	Day           time.Time `json:"day"`
	Transport     float64   `json:"transport"`
	Breakfast     float64   `json:"breakfast"`
	Lunch         float64   `json:"lunch"`
	Dinner        float64   `json:"dinner"`
	Accommodation float64   `json:"accommodation"`
}

func (c CompensationData) Validate() error {
	if c.AssignationID == "" {
		return errors.New("не указано назначение")
	}
	if c.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if c.Transport < 0 || c.Breakfast < 0 || c.Lunch < 0 || c.Dinner < 0 || c.Accommodation < 0 {
		return errors.New("суммы не могут быть отрицательными")
	}
	return nil
}

type CompensationView struct {
	ID            string                    `json:"id"`
	Day           time.Time                 `json:"day"`
	Transport     float64                   `json:"transport"`
	Breakfast     float64                   `json:"breakfast"`
	Lunch         float64                   `json:"lunch"`
	Dinner        float64                   `json:"dinner"`
	Accommodation float64                   `json:"accommodation"`
	DayAmount     float64                   `json:"day_amount"`
	Status        models.CompensationStatus `json:"status"`
}

func CompensationConvert(rec dbmodels.Compensation) CompensationView {
	return CompensationView{
		ID:            rec.ID,
		Day:           rec.Day,
		Transport:     rec.Transport,
		Breakfast:     rec.Breakfast,
		Lunch:         rec.Lunch,
		Dinner:        rec.Dinner,
		Accommodation: rec.Accommodation,
		DayAmount:     rec.DayAmount(),
		Status:        rec.Status,
	}
}

// EmployeeCompensationView - назначение с дневными компенсациями и итогом.
type EmployeeCompensationView struct {
	AssignationID string             `json:"assignation_id"`
	EmployeeID    string             `json:"employee_id"`
	MissionID     string             `json:"mission_id"`
	MissionName   string             `json:"mission_name"`
	Duration      int                `json:"duration"`
	Compensations []CompensationView `json:"compensations"`
	TotalAmount   float64            `json:"total_amount"`
}

type StatusData struct {
	Status models.CompensationStatus `json:"status"`
}

func (s StatusData) Validate() error {
	if s.Status == "" {
		return errors.New("не указан статус")
	}
	return s.Status.Validate()
}

type TotalsView struct {
	PaidAmount    float64 `json:"paid_amount"`
	NotPaidAmount float64 `json:"not_paid_amount"`
}
