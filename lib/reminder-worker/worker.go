package reminderworker

import (
	"context"
	"fmt"
	"time"

	"hr-office-backend/config"
	"hr-office-backend/db"
	recruitmentstore "hr-office-backend/lib/recruitment-req/store"
	"hr-office-backend/lib/smtp"
	baseworker "hr-office-backend/lib/utils/base-worker"
	"hr-office-backend/lib/utils/helpers"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

// StartWorker запускает напоминания согласующим, у которых заявка на найм
// зависла без действия дольше настроенного срока.
func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("ApprovalReminderWorker",
			time.Minute,
			time.Duration(config.Conf.Workers.ReminderPeriodMins)*time.Minute),
		store:             recruitmentstore.NewInstance(db.DB),
		reminderAfterDays: config.Conf.Workers.ReminderAfterDays,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store             recruitmentstore.Provider
	reminderAfterDays int
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.store.ListByStatus(models.RequestStatusAwaiting)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения списка заявок на согласовании")
		return
	}
	cutoff := time.Now().AddDate(0, 0, -i.reminderAfterDays)
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		_, step := rec.GetCurrentApprovalStep()
		if step == nil {
			continue
		}
		if step.UpdatedAt.After(cutoff) {
			continue
		}
		i.remind(rec, step)
	}
}

func (i impl) remind(rec dbmodels.RecruitmentRequest, step *dbmodels.RecruitmentApproval) {
	logger := i.GetLogger().
		WithField("rec_id", rec.ID).
		WithField("approver_id", step.ApproverID)
	if step.Approver == nil || step.Approver.Email == "" {
		logger.Warn("у согласующего нет почты, напоминание не отправлено")
		return
	}
	if smtp.Instance == nil {
		return
	}
	msg := fmt.Sprintf("Заявка на найм «%s» ожидает вашего согласования с %s",
		rec.PositionTitle, step.CreatedAt.Format("02.01.2006"))
	err := smtp.Instance.SendEMail(step.Approver.Email, msg, "Напоминание о согласовании")
	if err != nil {
		logger.WithError(err).Error("Ошибка отправки напоминания")
		return
	}
	logger.Info("отправлено напоминание согласующему")
}
