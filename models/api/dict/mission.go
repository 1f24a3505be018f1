package dictapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "hr-office-backend/models/db"
)

type MissionData struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Site        string    `json:"site"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

func (m MissionData) Validate() error {
	if m.Name == "" {
		return errors.New("не указано название командировки")
	}
	if !m.EndDate.IsZero() && m.EndDate.Before(m.StartDate) {
		return errors.New("дата окончания раньше даты начала")
	}
	return nil
}

type MissionView struct {
	ID string `json:"id"`
	MissionData
}

func MissionConvert(rec dbmodels.Mission) MissionView {
	return MissionView{
		ID: rec.ID,
		MissionData: MissionData{
			Name:        rec.Name,
			Description: rec.Description,
			Site:        rec.Site,
			StartDate:   rec.StartDate,
			EndDate:     rec.EndDate,
		},
	}
}

type TransportData struct {
	Type string `json:"type"`
}

func (t TransportData) Validate() error {
	if t.Type == "" {
		return errors.New("не указан тип транспорта")
	}
	return nil
}

type TransportView struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

func TransportConvert(rec dbmodels.Transport) TransportView {
	return TransportView{ID: rec.ID, Type: rec.Type}
}

type ExpenseTypeData struct {
	Name string `json:"name"`
}

func (t ExpenseTypeData) Validate() error {
	if t.Name == "" {
		return errors.New("не указано название типа расходов")
	}
	return nil
}

type ExpenseTypeView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ExpenseTypeConvert(rec dbmodels.ExpenseReportType) ExpenseTypeView {
	return ExpenseTypeView{ID: rec.ID, Name: rec.Name}
}
