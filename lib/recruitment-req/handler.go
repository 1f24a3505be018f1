package recruitmenthandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-office-backend/db"
	departmentstore "hr-office-backend/lib/dicts/department/store"
	"hr-office-backend/lib/notification"
	approvalhandler "hr-office-backend/lib/recruitment-approval"
	approvalstore "hr-office-backend/lib/recruitment-approval/store"
	recruitmentstore "hr-office-backend/lib/recruitment-req/store"
	"hr-office-backend/lib/smtp"
	"hr-office-backend/models"
	recruitmentapimodels "hr-office-backend/models/api/recruitment"
	dbmodels "hr-office-backend/models/db"
	wsmodels "hr-office-backend/models/ws"
)

type Provider interface {
	Create(userID string, data recruitmentapimodels.RecruitmentRequestCreateData) (id string, err error)
	GetByID(id string) (item recruitmentapimodels.RecruitmentRequestView, err error)
	Update(id string, data recruitmentapimodels.RecruitmentRequestEditData) error
	Delete(id string) error
	List(filter recruitmentapimodels.RrFilter) (list []recruitmentapimodels.RecruitmentRequestView, rowCount int64, err error)
	Approve(id, userID string, data recruitmentapimodels.DecisionData) error
	Reject(id, userID string, data recruitmentapimodels.DecisionData) error
	UpdateStatus(id string, status models.RequestStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:           recruitmentstore.NewInstance(db.DB),
		approvalStore:   approvalstore.NewInstance(db.DB),
		departmentStore: departmentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store           recruitmentstore.Provider
	approvalStore   approvalstore.Provider
	departmentStore departmentstore.Provider
}

func (i impl) Create(userID string, data recruitmentapimodels.RecruitmentRequestCreateData) (id string, err error) {
	logger := log.WithField("user_id", userID)
	if err = data.Validate(); err != nil {
		return "", errors.Wrap(models.ErrBadRequest, err.Error())
	}
	if data.DepartmentID != "" {
		depRec, err := i.departmentStore.GetByID(data.DepartmentID)
		if err != nil {
			return "", err
		}
		if depRec == nil {
			return "", errors.Wrap(models.ErrBadRequest, "подразделение не найдено")
		}
	}
	rec := dbmodels.RecruitmentRequest{
		RequesterID:     userID,
		PositionTitle:   data.PositionTitle,
		ContractType:    data.ContractType,
		OpenedPositions: data.OpenedPositions,
		Justification:   data.Justification,
		Status:          models.RequestStatusAwaiting,
	}
	if data.DepartmentID != "" {
		rec.DepartmentID = &data.DepartmentID
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := recruitmentstore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			logger.
				WithField("request", fmt.Sprintf("%+v", data)).
				WithError(err).
				Error("ошибка создания заявки на найм")
			return err
		}
		return approvalhandler.NewHandlerWithTx(tx).Save(id, data.ApproverIDs)
	})
	if err != nil {
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("создана заявка на найм")
	created, err := i.store.GetByID(id)
	if err == nil && created != nil {
		if _, step := created.GetCurrentApprovalStep(); step != nil {
			i.notifyApprover(*created, step)
		}
	}
	return id, nil
}

func (i impl) GetByID(id string) (item recruitmentapimodels.RecruitmentRequestView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return recruitmentapimodels.RecruitmentRequestView{}, err
	}
	return recruitmentapimodels.RecruitmentRequestConvert(*rec), nil
}

func (i impl) Update(id string, data recruitmentapimodels.RecruitmentRequestEditData) error {
	logger := log.WithField("rec_id", id)
	if err := data.Validate(); err != nil {
		return errors.Wrap(models.ErrBadRequest, err.Error())
	}
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status.IsTerminal() {
		return errors.Wrap(models.ErrInvalidState, "заявка в терминальном статусе не редактируется")
	}
	updMap := map[string]interface{}{
		"position_title":   data.PositionTitle,
		"contract_type":    data.ContractType,
		"opened_positions": data.OpenedPositions,
		"justification":    data.Justification,
	}
	if data.DepartmentID != "" {
		updMap["department_id"] = data.DepartmentID
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления заявки на найм")
		return err
	}
	logger.Info("обновлена заявка на найм")
	return nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if rec.Status.IsTerminal() {
		return errors.Wrap(models.ErrInvalidState, "заявка в терминальном статусе не удаляется")
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления заявки на найм")
		return err
	}
	logger.Info("удалена заявка на найм")
	return nil
}

func (i impl) List(filter recruitmentapimodels.RrFilter) (list []recruitmentapimodels.RecruitmentRequestView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) >= rowCount {
		return []recruitmentapimodels.RecruitmentRequestView{}, rowCount, nil
	}
	recList, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка заявок на найм")
		return nil, 0, err
	}
	result := make([]recruitmentapimodels.RecruitmentRequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, recruitmentapimodels.RecruitmentRequestConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Approve(id, userID string, data recruitmentapimodels.DecisionData) error {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", userID)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	var validated bool
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		validated, err = i.approveTx(recruitmentstore.NewInstance(tx), approvalstore.NewInstance(tx), *rec, userID, data)
		return err
	})
	if err != nil {
		return err
	}
	logger.Info("этап заявки согласован")
	updated, err := i.store.GetByID(id)
	if err != nil || updated == nil {
		return nil
	}
	if validated {
		i.notifyRequester(*updated, wsmodels.CodeRequestValidated,
			fmt.Sprintf("Заявка на найм «%s» полностью согласована", updated.PositionTitle))
		return nil
	}
	if _, step := updated.GetCurrentApprovalStep(); step != nil {
		i.notifyApprover(*updated, step)
	}
	return nil
}

// approveTx завершает текущий этап и, если он был последним, переводит
// заявку в "Validé". Этап и заявка обновляются в одной транзакции.
func (i impl) approveTx(store recruitmentstore.Provider, stepStore approvalstore.Provider, rec dbmodels.RecruitmentRequest, userID string, data recruitmentapimodels.DecisionData) (validated bool, err error) {
	isLast, step, err := i.checkTurn(rec, userID)
	if err != nil {
		return false, err
	}
	sign, err := data.GetSignature()
	if err != nil {
		return false, errors.Wrap(models.ErrBadRequest, err.Error())
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":        models.ApprovalStatusApproved,
		"comment":       data.Comment,
		"signature":     sign,
		"approval_date": &now,
	}
	err = stepStore.Update(step.ID, updMap)
	if err != nil {
		return false, errors.Wrap(err, "ошибка обновления этапа согласования")
	}
	if !isLast {
		return false, nil
	}
	return true, i.changeStatus(store, rec, models.RequestStatusValidated)
}

func (i impl) Reject(id, userID string, data recruitmentapimodels.DecisionData) error {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", userID)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		return i.rejectTx(recruitmentstore.NewInstance(tx), approvalstore.NewInstance(tx), *rec, userID, data)
	})
	if err != nil {
		return err
	}
	logger.Info("заявка отклонена")
	i.notifyRequester(*rec, wsmodels.CodeRequestRejected,
		fmt.Sprintf("Заявка на найм «%s» отклонена", rec.PositionTitle))
	return nil
}

// rejectTx отклоняет текущий этап и саму заявку в одной транзакции.
// Оставшиеся этапы не меняются: цепочка закрыта терминальным статусом заявки.
func (i impl) rejectTx(store recruitmentstore.Provider, stepStore approvalstore.Provider, rec dbmodels.RecruitmentRequest, userID string, data recruitmentapimodels.DecisionData) error {
	_, step, err := i.checkTurn(rec, userID)
	if err != nil {
		return err
	}
	sign, err := data.GetSignature()
	if err != nil {
		return errors.Wrap(models.ErrBadRequest, err.Error())
	}
	now := time.Now()
	updMap := map[string]interface{}{
		"status":        models.ApprovalStatusRejected,
		"comment":       data.Comment,
		"signature":     sign,
		"approval_date": &now,
	}
	err = stepStore.Update(step.ID, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления этапа согласования")
	}
	return i.changeStatus(store, rec, models.RequestStatusRejected)
}

func (i impl) UpdateStatus(id string, status models.RequestStatus) error {
	logger := log.
		WithField("rec_id", id).
		WithField("new_status", status)
	if err := status.Validate(); err != nil {
		return errors.Wrap(models.ErrBadRequest, err.Error())
	}
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	err = i.changeStatus(i.store, *rec, status)
	if err != nil {
		return err
	}
	logger.Info("статус заявки обновлен")
	switch status {
	case models.RequestStatusValidated:
		i.notifyRequester(*rec, wsmodels.CodeRequestValidated,
			fmt.Sprintf("Заявка на найм «%s» полностью согласована", rec.PositionTitle))
	case models.RequestStatusRejected:
		i.notifyRequester(*rec, wsmodels.CodeRequestRejected,
			fmt.Sprintf("Заявка на найм «%s» отклонена", rec.PositionTitle))
	}
	return nil
}

// changeStatus - единственная точка смены статуса заявки, и для пошагового
// согласования, и для административного перевода.
func (i impl) changeStatus(store recruitmentstore.Provider, rec dbmodels.RecruitmentRequest, to models.RequestStatus) error {
	if !rec.Status.IsAllowChange(to) {
		return errors.Wrapf(models.ErrInvalidState, "переход статуса %v -> %v недопустим", rec.Status, to)
	}
	updMap := map[string]interface{}{
		"status": to,
	}
	err := store.Update(rec.ID, updMap)
	if err != nil {
		return errors.Wrap(err, "ошибка обновления статуса заявки")
	}
	return nil
}

// checkTurn проверяет, что заявка еще согласуется и очередь за указанным
// пользователем.
func (i impl) checkTurn(rec dbmodels.RecruitmentRequest, userID string) (isLast bool, step *dbmodels.RecruitmentApproval, err error) {
	if rec.Status.IsTerminal() {
		return false, nil, errors.Wrapf(models.ErrInvalidState, "заявка уже в статусе %v", rec.Status)
	}
	isLast, step = rec.GetCurrentApprovalStep()
	if step == nil {
		return false, nil, errors.Wrap(models.ErrInvalidState, "у заявки нет незавершенных этапов согласования")
	}
	if step.ApproverID != userID {
		return false, nil, errors.Wrap(models.ErrForbidden, "за текущий этап отвечает другой сотрудник")
	}
	return isLast, step, nil
}

func (i impl) getRec(id string) (rec *dbmodels.RecruitmentRequest, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("ошибка получения заявки на найм")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "заявка на найм не найдена")
	}
	return rec, nil
}

func (i impl) notifyApprover(rec dbmodels.RecruitmentRequest, step *dbmodels.RecruitmentApproval) {
	msg := fmt.Sprintf("Заявка на найм «%s» ожидает вашего согласования", rec.PositionTitle)
	if notification.Instance != nil {
		notification.Instance.Notify(step.ApproverID, wsmodels.CodeApprovalPending, msg)
	}
	approver := findApprover(rec, step.ApproverID)
	if approver == nil || approver.Email == "" || smtp.Instance == nil {
		return
	}
	err := smtp.Instance.SendEMail(approver.Email, msg, "Согласование заявки на найм")
	if err != nil {
		log.
			WithField("rec_id", rec.ID).
			WithError(err).
			Error("ошибка отправки письма согласующему")
	}
}

func (i impl) notifyRequester(rec dbmodels.RecruitmentRequest, code, msg string) {
	if notification.Instance != nil {
		notification.Instance.Notify(rec.RequesterID, code, msg)
	}
	if rec.Requester == nil || rec.Requester.Email == "" || smtp.Instance == nil {
		return
	}
	err := smtp.Instance.SendEMail(rec.Requester.Email, msg, "Заявка на найм")
	if err != nil {
		log.
			WithField("rec_id", rec.ID).
			WithError(err).
			Error("ошибка отправки письма инициатору")
	}
}

func findApprover(rec dbmodels.RecruitmentRequest, approverID string) *dbmodels.Employee {
	for _, step := range rec.Approvals {
		if step.ApproverID == approverID {
			return step.Approver
		}
	}
	return nil
}
