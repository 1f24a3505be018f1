package dbmodels

import "hr-office-backend/models"

type ExpenseReportType struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex"`
}

// ExpenseReport - строка авансового отчета по командировке.
type ExpenseReport struct {
	BaseModel
	AssignationID string              `gorm:"type:varchar(36);index:idx_expense_assignation"`
	Assignation   *MissionAssignation `gorm:"foreignKey:AssignationID"`
	TypeID        string              `gorm:"type:varchar(36)"`
	Type          *ExpenseReportType  `gorm:"foreignKey:TypeID"`
	Title         string              `gorm:"type:varchar(255)"`
	Description   string
	Amount        float64
	Status        models.ExpenseStatus `gorm:"type:varchar(100)"`
	Attachments   []FileStorage        `gorm:"foreignKey:ExpenseReportID"`
}
