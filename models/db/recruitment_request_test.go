package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-office-backend/models"
)

func TestGetCurrentApprovalStep(t *testing.T) {
	build := func(statuses ...models.ApprovalStatus) RecruitmentRequest {
		rec := RecruitmentRequest{}
		// этапы специально в обратном порядке: очередность задает ApprovalOrder
		for idx := len(statuses) - 1; idx >= 0; idx-- {
			rec.Approvals = append(rec.Approvals, RecruitmentApproval{
				ApproverID:    string(rune('a' + idx)),
				ApprovalOrder: idx + 1,
				Status:        statuses[idx],
			})
		}
		return rec
	}

	t.Run(`очередь за первым этапом`, func(t *testing.T) {
		rec := build(models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting)
		isLast, step := rec.GetCurrentApprovalStep()
		require.NotNil(t, step)
		require.Equal(t, 1, step.ApprovalOrder)
		require.Equal(t, false, isLast)
	})

	t.Run(`после первых двух очередь за третьим и он последний`, func(t *testing.T) {
		rec := build(models.ApprovalStatusApproved, models.ApprovalStatusApproved, models.ApprovalStatusAwaiting)
		isLast, step := rec.GetCurrentApprovalStep()
		require.NotNil(t, step)
		require.Equal(t, 3, step.ApprovalOrder)
		require.Equal(t, true, isLast)
	})

	t.Run(`все этапы завершены`, func(t *testing.T) {
		rec := build(models.ApprovalStatusApproved, models.ApprovalStatusApproved)
		_, step := rec.GetCurrentApprovalStep()
		require.Nil(t, step)
	})

	t.Run(`единственный этап сразу последний`, func(t *testing.T) {
		rec := build(models.ApprovalStatusAwaiting)
		isLast, step := rec.GetCurrentApprovalStep()
		require.NotNil(t, step)
		require.Equal(t, true, isLast)
	})
}

func TestTotalAmount(t *testing.T) {
	t.Run(`сумма по дням`, func(t *testing.T) {
		list := []Compensation{
			{Transport: 5000, Breakfast: 2000, Lunch: 4000, Dinner: 4000, Accommodation: 8000},
			{Transport: 5000, Breakfast: 2000, Lunch: 4000, Dinner: 4000, Accommodation: 8000},
			{Transport: 5000, Breakfast: 2000, Lunch: 4000, Dinner: 4000, Accommodation: 8000},
		}
		require.Equal(t, float64(23000), list[0].DayAmount())
		require.Equal(t, float64(69000), TotalAmount(list))
	})

	t.Run(`пустой список`, func(t *testing.T) {
		require.Equal(t, float64(0), TotalAmount(nil))
	})
}
