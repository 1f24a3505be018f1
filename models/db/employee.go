package dbmodels

import "hr-office-backend/models"

type Employee struct {
	BaseModel
	FirstName    string `gorm:"type:varchar(255)"`
	LastName     string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Role         models.UserRole `gorm:"type:varchar(100)"`
	JobTitle     string `gorm:"type:varchar(255)"`
	Grade        string `gorm:"type:varchar(100)"` // категория для шкалы суточных
	DepartmentID *string `gorm:"type:varchar(36)"`
	Department   *Department
	SuperiorID   *string `gorm:"type:varchar(36)"` // непосредственный руководитель
	Superior     *Employee `gorm:"foreignKey:SuperiorID"`
}

func (e Employee) GetFullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	return e.FirstName + " " + e.LastName
}

type Department struct {
	BaseModel
	Name     string  `gorm:"type:varchar(255)"`
	ParentID *string `gorm:"type:varchar(36)"`
}
