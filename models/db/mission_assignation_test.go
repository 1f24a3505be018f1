package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-office-backend/models"
)

func TestDurationDays(t *testing.T) {
	day := func(d int, h int) time.Time {
		return time.Date(2026, 3, d, h, 0, 0, 0, time.UTC)
	}

	t.Run(`однодневная командировка`, func(t *testing.T) {
		require.Equal(t, 1, DurationDays(day(10, 9), day(10, 18)))
	})

	t.Run(`возврат раньше отъезда - минимум один день`, func(t *testing.T) {
		require.Equal(t, 1, DurationDays(day(10, 9), day(10, 9)))
		require.Equal(t, 1, DurationDays(day(10, 9), day(9, 9)))
	})

	t.Run(`ровно трое суток`, func(t *testing.T) {
		require.Equal(t, 3, DurationDays(day(10, 9), day(13, 9)))
	})

	t.Run(`неполные сутки округляются вверх`, func(t *testing.T) {
		require.Equal(t, 3, DurationDays(day(10, 9), day(12, 18)))
	})
}

func TestGetCurrentValidation(t *testing.T) {
	build := func(directorStatus, drhStatus models.ApprovalStatus) MissionAssignation {
		return MissionAssignation{
			Validations: []MissionValidation{
				// DRH специально первым в срезе: порядок должен задаваться ролью
				{ValidatorRole: models.ValidatorRoleDRH, ValidatorID: "drh", Status: drhStatus},
				{ValidatorRole: models.ValidatorRoleDirector, ValidatorID: "director", Status: directorStatus},
			},
		}
	}

	t.Run(`очередь за руководителем`, func(t *testing.T) {
		isLast, row := build(models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting).GetCurrentValidation()
		require.NotNil(t, row)
		require.Equal(t, models.ValidatorRoleDirector, row.ValidatorRole)
		require.Equal(t, false, isLast)
	})

	t.Run(`после руководителя очередь за DRH и этап последний`, func(t *testing.T) {
		isLast, row := build(models.ApprovalStatusApproved, models.ApprovalStatusAwaiting).GetCurrentValidation()
		require.NotNil(t, row)
		require.Equal(t, models.ValidatorRoleDRH, row.ValidatorRole)
		require.Equal(t, true, isLast)
	})

	t.Run(`все этапы завершены`, func(t *testing.T) {
		_, row := build(models.ApprovalStatusApproved, models.ApprovalStatusApproved).GetCurrentValidation()
		require.Nil(t, row)
	})
}
