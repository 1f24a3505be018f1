package dbmodels

import "time"

type Mission struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	Site        string `gorm:"type:varchar(255)"` // место проведения
	StartDate   time.Time
	EndDate     time.Time
}

type Transport struct {
	BaseModel
	Type string `gorm:"type:varchar(255)"`
}
