package initializers

import (
	"context"

	"hr-office-backend/config"
	"hr-office-backend/fiberlog"
	authhandler "hr-office-backend/lib/auth"
	commentprovider "hr-office-backend/lib/comment"
	compensationhandler "hr-office-backend/lib/compensation"
	departmentprovider "hr-office-backend/lib/dicts/department"
	employeeprovider "hr-office-backend/lib/dicts/employee"
	expensetypeprovider "hr-office-backend/lib/dicts/expense-type"
	missionprovider "hr-office-backend/lib/dicts/mission"
	transportprovider "hr-office-backend/lib/dicts/transport"
	expensehandler "hr-office-backend/lib/expense-report"
	xlsexport "hr-office-backend/lib/export/xls"
	filestorage "hr-office-backend/lib/file-storage"
	assignationhandler "hr-office-backend/lib/mission-assignation"
	validationhandler "hr-office-backend/lib/mission-validation"
	"hr-office-backend/lib/notification"
	connectionhub "hr-office-backend/lib/notification/hub"
	approvalhandler "hr-office-backend/lib/recruitment-approval"
	recruitmenthandler "hr-office-backend/lib/recruitment-req"
	reminderworker "hr-office-backend/lib/reminder-worker"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	notification.NewHandler()
	filestorage.NewHandler()
	authhandler.NewHandler()
	departmentprovider.NewHandler()
	employeeprovider.NewHandler()
	missionprovider.NewHandler()
	transportprovider.NewHandler()
	expensetypeprovider.NewHandler()
	commentprovider.NewHandler()
	approvalhandler.NewHandler()
	recruitmenthandler.NewHandler()
	assignationhandler.NewHandler()
	validationhandler.NewHandler()
	compensationhandler.NewHandler()
	expensehandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача напоминаний согласующим о зависших заявках на найм
	reminderworker.StartWorker(ctx)
}
