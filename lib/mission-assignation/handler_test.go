package assignationhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-office-backend/models"
	missionapimodels "hr-office-backend/models/api/mission"
	dbmodels "hr-office-backend/models/db"
)

func TestBuildCompensations(t *testing.T) {
	scale := missionapimodels.DailyScale{
		Transport:     5000,
		Breakfast:     2000,
		Lunch:         4000,
		Dinner:        4000,
		Accommodation: 8000,
	}

	t.Run(`по строке на каждый день командировки`, func(t *testing.T) {
		rec := dbmodels.MissionAssignation{
			EmployeeID:    "emp-1",
			DepartureDate: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
			ReturnDate:    time.Date(2026, 3, 12, 20, 0, 0, 0, time.UTC),
		}
		rec.ID = "as-1"
		rec.Duration = dbmodels.DurationDays(rec.DepartureDate, rec.ReturnDate)

		list := BuildCompensations(rec, scale)
		require.Equal(t, 3, len(list))
		for idx, comp := range list {
			require.Equal(t, "as-1", comp.AssignationID)
			require.Equal(t, "emp-1", comp.EmployeeID)
			require.Equal(t, rec.DepartureDate.AddDate(0, 0, idx), comp.Day)
			require.Equal(t, models.CompensationNotPaid, comp.Status)
			require.Equal(t, float64(23000), comp.DayAmount())
		}
		require.Equal(t, float64(69000), dbmodels.TotalAmount(list))
	})

	t.Run(`однодневная командировка - одна строка`, func(t *testing.T) {
		rec := dbmodels.MissionAssignation{
			DepartureDate: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
			ReturnDate:    time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC),
		}
		rec.Duration = dbmodels.DurationDays(rec.DepartureDate, rec.ReturnDate)

		list := BuildCompensations(rec, scale)
		require.Equal(t, 1, len(list))
	})

	t.Run(`нулевая длительность - пустой список`, func(t *testing.T) {
		rec := dbmodels.MissionAssignation{}
		require.Equal(t, 0, len(BuildCompensations(rec, scale)))
	})
}
