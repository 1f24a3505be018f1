package transportprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-office-backend/db"
	transportstore "hr-office-backend/lib/dicts/transport/store"
	"hr-office-backend/models"
	dictapimodels "hr-office-backend/models/api/dict"
	dbmodels "hr-office-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.TransportData) (id string, err error)
	Get(id string) (item dictapimodels.TransportView, err error)
	List() (list []dictapimodels.TransportView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: transportstore.NewInstance(db.DB),
	}
}

type impl struct {
	store transportstore.Provider
}

func (i impl) Create(request dictapimodels.TransportData) (id string, err error) {
	rec := dbmodels.Transport{
		Type: request.Type,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.WithField("rec_id", id).Info("создан транспорт")
	return id, nil
}

func (i impl) Get(id string) (item dictapimodels.TransportView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.TransportView{}, err
	}
	if rec == nil {
		return dictapimodels.TransportView{}, errors.Wrap(models.ErrNotFound, "транспорт не найден")
	}
	return dictapimodels.TransportConvert(*rec), nil
}

func (i impl) List() (list []dictapimodels.TransportView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.TransportView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.TransportConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален транспорт")
	return nil
}
