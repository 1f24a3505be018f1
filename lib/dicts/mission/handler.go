package missionprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-office-backend/db"
	missionstore "hr-office-backend/lib/dicts/mission/store"
	"hr-office-backend/models"
	dictapimodels "hr-office-backend/models/api/dict"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.MissionData) (id string, err error)
	Update(id string, request dictapimodels.MissionData) error
	Get(id string) (item dictapimodels.MissionView, err error)
	GetRec(id string) (rec *dbmodels.Mission, err error)
	List() (list []dictapimodels.MissionView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: missionstore.NewInstance(db.DB),
	}
}

type impl struct {
	store missionstore.Provider
}

func (i impl) Create(request dictapimodels.MissionData) (id string, err error) {
	rec := dbmodels.Mission{
		Name:        request.Name,
		Description: request.Description,
		Site:        request.Site,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("mission_name", rec.Name).
		WithField("rec_id", id).
		Info("создана командировка")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.MissionData) error {
	updMap := map[string]interface{}{
		"name":        request.Name,
		"description": request.Description,
		"site":        request.Site,
		"start_date":  request.StartDate,
		"end_date":    request.EndDate,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлена командировка")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.MissionView, err error) {
	rec, err := i.GetRec(id)
	if err != nil {
		return dictapimodels.MissionView{}, err
	}
	return dictapimodels.MissionConvert(*rec), nil
}

func (i impl) GetRec(id string) (rec *dbmodels.Mission, err error) {
	rec, err = i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrap(models.ErrNotFound, "командировка не найдена")
	}
	return rec, nil
}

func (i impl) List() (list []dictapimodels.MissionView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.MissionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.MissionConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удалена командировка")
	return nil
}
