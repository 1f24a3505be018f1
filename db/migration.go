package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-office-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.Mission{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Mission")
	}
	if err := DB.AutoMigrate(&dbmodels.Transport{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Transport")
	}
	if err := DB.AutoMigrate(&dbmodels.RecruitmentRequest{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RecruitmentRequest")
	}
	if err := DB.AutoMigrate(&dbmodels.RecruitmentApproval{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RecruitmentApproval")
	}
	if err := DB.AutoMigrate(&dbmodels.MissionAssignation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MissionAssignation")
	}
	if err := DB.AutoMigrate(&dbmodels.MissionValidation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры MissionValidation")
	}
	if err := DB.AutoMigrate(&dbmodels.Compensation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Compensation")
	}
	if err := DB.AutoMigrate(&dbmodels.ExpenseReportType{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ExpenseReportType")
	}
	if err := DB.AutoMigrate(&dbmodels.ExpenseReport{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ExpenseReport")
	}
	if err := DB.AutoMigrate(&dbmodels.Comment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Comment")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	if err := DB.AutoMigrate(&dbmodels.PushData{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры PushData")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
