package compensationhandler

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"hr-office-backend/models"
	dbmodels "hr-office-backend/models/db"
)

type fakeCompensationStore struct {
	recs    map[string]dbmodels.Compensation
	byEmp   []dbmodels.Compensation
	updates map[string]map[string]interface{}
}

func newFakeCompensationStore() *fakeCompensationStore {
	return &fakeCompensationStore{
		recs:    map[string]dbmodels.Compensation{},
		updates: map[string]map[string]interface{}{},
	}
}

func (f *fakeCompensationStore) Create(rec dbmodels.Compensation) (string, error) {
	return "new-id", nil
}

func (f *fakeCompensationStore) GetByID(id string) (*dbmodels.Compensation, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeCompensationStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeCompensationStore) ListByAssignationID(assignationID string) ([]dbmodels.Compensation, error) {
	return nil, nil
}

func (f *fakeCompensationStore) ListByEmployeeID(employeeID string) ([]dbmodels.Compensation, error) {
	return f.byEmp, nil
}

func (f *fakeCompensationStore) UpdateStatusByAssignationID(assignationID string, status models.CompensationStatus) (int64, error) {
	var affected int64
	for id, rec := range f.recs {
		if rec.AssignationID != assignationID {
			continue
		}
		rec.Status = status
		f.recs[id] = rec
		affected++
	}
	return affected, nil
}

func (f *fakeCompensationStore) DeleteByAssignationID(assignationID string) error { return nil }

func (f *fakeCompensationStore) GetTotalByStatus(status models.CompensationStatus) (float64, error) {
	return 0, nil
}

func compensationRow(assignationID string, day int, amount float64) dbmodels.Compensation {
	rec := dbmodels.Compensation{
		AssignationID: assignationID,
		EmployeeID:    "emp-1",
		Day:           time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		Lunch:         amount,
		Status:        models.CompensationNotPaid,
	}
	rec.Assignation = &dbmodels.MissionAssignation{
		MissionID: "mission-" + assignationID,
		Mission:   &dbmodels.Mission{Name: "Mission " + assignationID},
	}
	return rec
}

func TestGetByEmployeeID(t *testing.T) {
	t.Run(`строки группируются по назначениям с итогами`, func(t *testing.T) {
		store := newFakeCompensationStore()
		store.byEmp = []dbmodels.Compensation{
			compensationRow("as-1", 10, 23000),
			compensationRow("as-1", 11, 23000),
			compensationRow("as-1", 12, 23000),
			compensationRow("as-2", 20, 15000),
		}
		handler := impl{store: store}

		list, err := handler.GetByEmployeeID("emp-1")
		require.Nil(t, err)
		require.Equal(t, 2, len(list))

		require.Equal(t, "as-1", list[0].AssignationID)
		require.Equal(t, 3, len(list[0].Compensations))
		require.Equal(t, float64(69000), list[0].TotalAmount)
		require.Equal(t, "Mission as-1", list[0].MissionName)

		require.Equal(t, "as-2", list[1].AssignationID)
		require.Equal(t, float64(15000), list[1].TotalAmount)
	})

	t.Run(`без компенсаций - пустой список`, func(t *testing.T) {
		handler := impl{store: newFakeCompensationStore()}

		list, err := handler.GetByEmployeeID("emp-1")
		require.Nil(t, err)
		require.Equal(t, 0, len(list))
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run(`смена статуса пишется в хранилище`, func(t *testing.T) {
		store := newFakeCompensationStore()
		store.recs["comp-1"] = dbmodels.Compensation{Status: models.CompensationNotPaid}
		handler := impl{store: store}

		err := handler.UpdateStatus("comp-1", models.CompensationPaid)
		require.Nil(t, err)
		require.Equal(t, models.CompensationPaid, store.updates["comp-1"]["status"])
	})

	t.Run(`неизвестный статус - ErrBadRequest`, func(t *testing.T) {
		handler := impl{store: newFakeCompensationStore()}

		err := handler.UpdateStatus("comp-1", models.CompensationStatus("annulé"))
		require.Equal(t, true, errors.Is(err, models.ErrBadRequest))
	})

	t.Run(`несуществующая компенсация - ErrNotFound`, func(t *testing.T) {
		handler := impl{store: newFakeCompensationStore()}

		err := handler.UpdateStatus("missing", models.CompensationPaid)
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))
	})
}

func TestUpdateStatusByAssignation(t *testing.T) {
	t.Run(`меняются все строки назначения`, func(t *testing.T) {
		store := newFakeCompensationStore()
		store.recs["comp-1"] = dbmodels.Compensation{AssignationID: "as-1", Status: models.CompensationNotPaid}
		store.recs["comp-2"] = dbmodels.Compensation{AssignationID: "as-1", Status: models.CompensationNotPaid}
		store.recs["comp-3"] = dbmodels.Compensation{AssignationID: "as-2", Status: models.CompensationNotPaid}
		handler := impl{store: store}

		err := handler.UpdateStatusByAssignationID("as-1", models.CompensationPaid)
		require.Nil(t, err)
		require.Equal(t, models.CompensationPaid, store.recs["comp-1"].Status)
		require.Equal(t, models.CompensationPaid, store.recs["comp-2"].Status)
		require.Equal(t, models.CompensationNotPaid, store.recs["comp-3"].Status)
	})

	t.Run(`назначение без компенсаций - ErrNotFound`, func(t *testing.T) {
		handler := impl{store: newFakeCompensationStore()}

		err := handler.UpdateStatusByAssignationID("missing", models.CompensationPaid)
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`неизвестный статус - ErrBadRequest`, func(t *testing.T) {
		handler := impl{store: newFakeCompensationStore()}

		err := handler.UpdateStatusByAssignationID("as-1", models.CompensationStatus("remboursé"))
		require.Equal(t, true, errors.Is(err, models.ErrBadRequest))
	})
}
