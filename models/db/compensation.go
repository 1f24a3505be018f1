package dbmodels

import (
	"time"

	"hr-office-backend/models"
)

// Compensation - суточные за один день командировки.
// Итоговая сумма нигде не хранится, всегда выводится из строк.
type Compensation struct {
	BaseModel
	AssignationID string              `gorm:"type:varchar(36);index:idx_compensation_assignation"`
	Assignation   *MissionAssignation `gorm:"foreignKey:AssignationID"`
	EmployeeID    string              `gorm:"type:varchar(36);index:idx_compensation_employee"`
	Employee      *Employee           `gorm:"foreignKey:EmployeeID"`
	Day           time.Time
	Transport     float64
	Breakfast     float64
	Lunch         float64
	Dinner        float64
	Accommodation float64
	Status        models.CompensationStatus `gorm:"type:varchar(100)"`
}

// DayAmount - сумма за день.
func (c Compensation) DayAmount() float64 {
	return c.Transport + c.Breakfast + c.Lunch + c.Dinner + c.Accommodation
}

// TotalAmount - сумма по набору строк.
func TotalAmount(list []Compensation) float64 {
	var total float64
	for _, rec := range list {
		total += rec.DayAmount()
	}
	return total
}
