package dbmodels

import (
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-office-backend/models"
)

// MissionAssignation - назначение сотрудника на командировку.
// Пара (employee_id, mission_id) уникальна.
type MissionAssignation struct {
	BaseModel
	EmployeeID    string    `gorm:"type:varchar(36);uniqueIndex:idx_employee_mission"`
	Employee      *Employee `gorm:"foreignKey:EmployeeID"`
	MissionID     string    `gorm:"type:varchar(36);uniqueIndex:idx_employee_mission"`
	Mission       *Mission  `gorm:"foreignKey:MissionID"`
	TransportID   *string   `gorm:"type:varchar(36)"`
	Transport     *Transport
	DepartureDate time.Time
	ReturnDate    time.Time
	Duration      int  // в днях, вычисляется при создании
	IsValidated   *int // nil - на валидации, 1 - валидировано, 0 - отклонено
	Validations   []MissionValidation `gorm:"foreignKey:AssignationID"`
	Compensations []Compensation      `gorm:"foreignKey:AssignationID"`
}

// MissionValidation - этап валидации назначения, одна запись на роль.
type MissionValidation struct {
	BaseModel
	AssignationID  string               `gorm:"type:varchar(36);uniqueIndex:idx_assignation_role"`
	ValidatorRole  models.ValidatorRole `gorm:"type:varchar(100);uniqueIndex:idx_assignation_role"`
	ValidatorID    string               `gorm:"type:varchar(36)"`
	Validator      *Employee            `gorm:"foreignKey:ValidatorID"`
	Status         models.ApprovalStatus `gorm:"type:varchar(100)"`
	Comment        string
	ValidationDate *time.Time
}

// GetCurrentValidation - очередной этап валидации в порядке ролей
// (руководитель, затем DRH). Семантика как у RecruitmentRequest.GetCurrentApprovalStep.
func (a MissionAssignation) GetCurrentValidation() (isLast bool, row *MissionValidation) {
	rows := make([]MissionValidation, len(a.Validations))
	copy(rows, a.Validations)
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ValidatorRole.ValidationOrder() < rows[j].ValidatorRole.ValidationOrder()
	})
	pending := 0
	for idx := range rows {
		if rows[idx].Status == models.ApprovalStatusAwaiting {
			if row == nil {
				row = &rows[idx]
			}
			pending++
		}
	}
	return pending == 1, row
}

// DurationDays считает длительность командировки в днях, минимум один день.
// Неполные сутки округляются вверх.
func DurationDays(departure, ret time.Time) int {
	if !ret.After(departure) {
		return 1
	}
	hours := ret.Sub(departure).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

func (a *MissionAssignation) AfterDelete(tx *gorm.DB) (err error) {
	if a.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("assignation_id = ?", a.ID).Delete(&MissionValidation{})
	tx.Clauses(clause.Returning{}).Where("assignation_id = ?", a.ID).Delete(&Compensation{})
	return
}
