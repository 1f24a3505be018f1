package commentprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-office-backend/db"
	commentstore "hr-office-backend/lib/comment/store"
	"hr-office-backend/models"
	recruitmentapimodels "hr-office-backend/models/api/recruitment"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	CreateForRequest(requestID, authorID string, data recruitmentapimodels.CommentData) (id string, err error)
	CreateForAssignation(assignationID, authorID string, data recruitmentapimodels.CommentData) (id string, err error)
	Update(id, authorID string, data recruitmentapimodels.CommentData) error
	Delete(id, authorID string) error
	ListByRequestID(requestID string) (list []recruitmentapimodels.CommentView, err error)
	ListByAssignationID(assignationID string) (list []recruitmentapimodels.CommentView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: commentstore.NewInstance(db.DB),
	}
}

type impl struct {
	store commentstore.Provider
}

func (i impl) CreateForRequest(requestID, authorID string, data recruitmentapimodels.CommentData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", errors.Wrap(models.ErrBadRequest, err.Error())
	}
	rec := dbmodels.Comment{
		RequestID: &requestID,
		AuthorID:  authorID,
		Text:      data.Text,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("request_id", requestID).
		WithField("rec_id", id).
		Info("добавлен комментарий к заявке")
	return id, nil
}

func (i impl) CreateForAssignation(assignationID, authorID string, data recruitmentapimodels.CommentData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", errors.Wrap(models.ErrBadRequest, err.Error())
	}
	rec := dbmodels.Comment{
		AssignationID: &assignationID,
		AuthorID:      authorID,
		Text:          data.Text,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("assignation_id", assignationID).
		WithField("rec_id", id).
		Info("добавлен комментарий к назначению")
	return id, nil
}

func (i impl) Update(id, authorID string, data recruitmentapimodels.CommentData) error {
	if err := data.Validate(); err != nil {
		return errors.Wrap(models.ErrBadRequest, err.Error())
	}
	if err := i.checkAuthor(id, authorID); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"text": data.Text,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлен комментарий")
	return nil
}

func (i impl) Delete(id, authorID string) error {
	if err := i.checkAuthor(id, authorID); err != nil {
		return err
	}
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален комментарий")
	return nil
}

func (i impl) ListByRequestID(requestID string) (list []recruitmentapimodels.CommentView, err error) {
	recList, err := i.store.ListByRequestID(requestID)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

func (i impl) ListByAssignationID(assignationID string) (list []recruitmentapimodels.CommentView, err error) {
	recList, err := i.store.ListByAssignationID(assignationID)
	if err != nil {
		return nil, err
	}
	return convertList(recList), nil
}

// Редактировать и удалять комментарий может только его автор.
func (i impl) checkAuthor(id, authorID string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "комментарий не найден")
	}
	if rec.AuthorID != authorID {
		return errors.Wrap(models.ErrForbidden, "комментарий принадлежит другому пользователю")
	}
	return nil
}

func convertList(recList []dbmodels.Comment) []recruitmentapimodels.CommentView {
	result := make([]recruitmentapimodels.CommentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, recruitmentapimodels.CommentConvert(rec))
	}
	return result
}
