package validationhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-office-backend/db"
	assignationhandler "hr-office-backend/lib/mission-assignation"
	assignationstore "hr-office-backend/lib/mission-assignation/store"
	validationstore "hr-office-backend/lib/mission-validation/store"
	"hr-office-backend/lib/notification"
	"hr-office-backend/lib/smtp"
	"hr-office-backend/models"
	missionapimodels "hr-office-backend/models/api/mission"
	dbmodels "hr-office-backend/models/db"
	wsmodels "hr-office-backend/models/ws"
)

type Provider interface {
	Validate(assignationID, userID string, data missionapimodels.DecisionData) error
	Reject(assignationID, userID string, data missionapimodels.DecisionData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		assignationStore: assignationstore.NewInstance(db.DB),
	}
}

type impl struct {
	assignationStore assignationstore.Provider
}

func (i impl) Validate(assignationID, userID string, data missionapimodels.DecisionData) error {
	logger := log.
		WithField("rec_id", assignationID).
		WithField("user_id", userID)
	rec, err := i.getRec(assignationID)
	if err != nil {
		return err
	}
	var validated bool
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		validated, err = i.validateTx(assignationstore.NewInstance(tx), validationstore.NewInstance(tx), *rec, userID, data)
		return err
	})
	if err != nil {
		return err
	}
	logger.Info("этап валидации пройден")
	updated, err := i.assignationStore.GetByID(assignationID)
	if err != nil || updated == nil {
		return nil
	}
	if validated {
		i.notifyEmployee(*updated, wsmodels.CodeMissionValidated,
			fmt.Sprintf("Назначение на командировку «%s» валидировано", missionName(*updated)))
		return nil
	}
	if _, row := updated.GetCurrentValidation(); row != nil {
		assignationhandler.NotifyValidator(*updated, row)
	}
	return nil
}

// validateTx завершает текущий этап валидации. На последнем этапе назначение
// помечается валидированным в той же транзакции.
func (i impl) validateTx(store assignationstore.Provider, valStore validationstore.Provider, rec dbmodels.MissionAssignation, userID string, data missionapimodels.DecisionData) (validated bool, err error) {
	isLast, row, err := checkTurn(rec, userID)
	if err != nil {
		return false, err
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":          models.ApprovalStatusApproved,
		"comment":         data.Comment,
		"validation_date": &now,
	}
	err = valStore.Update(row.ID, updMap)
	if err != nil {
		return false, errors.Wrap(err, "ошибка обновления этапа валидации")
	}
	if !isLast {
		return false, nil
	}
	err = store.Update(rec.ID, map[string]interface{}{
		"is_validated": models.AssignationValidated,
	})
	if err != nil {
		return false, errors.Wrap(err, "ошибка обновления статуса назначения")
	}
	return true, nil
}

func (i impl) Reject(assignationID, userID string, data missionapimodels.DecisionData) error {
	logger := log.
		WithField("rec_id", assignationID).
		WithField("user_id", userID)
	rec, err := i.getRec(assignationID)
	if err != nil {
		return err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return i.rejectTx(assignationstore.NewInstance(tx), validationstore.NewInstance(tx), *rec, userID, data)
	})
	if err != nil {
		return err
	}
	logger.Info("назначение отклонено")
	i.notifyEmployee(*rec, wsmodels.CodeMissionRejected,
		fmt.Sprintf("Назначение на командировку «%s» отклонено", missionName(*rec)))
	return nil
}

// rejectTx отклоняет текущий этап и назначение целиком в одной транзакции.
func (i impl) rejectTx(store assignationstore.Provider, valStore validationstore.Provider, rec dbmodels.MissionAssignation, userID string, data missionapimodels.DecisionData) error {
	_, row, err := checkTurn(rec, userID)
	if err != nil {
		return err
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":          models.ApprovalStatusRejected,
		"comment":         data.Comment,
		"validation_date": &now,
	}
	err = valStore.Update(row.ID, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления этапа валидации")
	}
	err = store.Update(rec.ID, map[string]interface{}{
		"is_validated": models.AssignationRejected,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка обновления статуса назначения")
	}
	return nil
}

// checkTurn проверяет, что назначение еще на валидации и очередь за указанным
// пользователем.
func checkTurn(rec dbmodels.MissionAssignation, userID string) (isLast bool, row *dbmodels.MissionValidation, err error) {
	if rec.IsValidated != nil {
		return false, nil, errors.Wrap(models.ErrInvalidState, "назначение уже прошло валидацию")
	}
	isLast, row = rec.GetCurrentValidation()
	if row == nil {
		return false, nil, errors.Wrap(models.ErrInvalidState, "у назначения нет незавершенных этапов валидации")
	}
	if row.ValidatorID != userID {
		return false, nil, errors.Wrap(models.ErrForbidden, "за текущий этап отвечает другой сотрудник")
	}
	return isLast, row, nil
}

func (i impl) getRec(id string) (rec *dbmodels.MissionAssignation, err error) {
	rec, err = i.assignationStore.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка получения назначения")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "назначение не найдено")
	}
	return rec, nil
}

func (i impl) notifyEmployee(rec dbmodels.MissionAssignation, code, msg string) {
	if notification.Instance != nil {
		notification.Instance.Notify(rec.EmployeeID, code, msg)
	}
	if rec.Employee == nil || rec.Employee.Email == "" || smtp.Instance == nil {
		return
	}
	err := smtp.Instance.SendEMail(rec.Employee.Email, msg, "Командировка")
	if err != nil {
		log.
			WithField("rec_id", rec.ID).
			WithError(err).
			Error("ошибка отправки письма сотруднику")
	}
}

func missionName(rec dbmodels.MissionAssignation) string {
	if rec.Mission != nil {
		return rec.Mission.Name
	}
	return ""
}
