package expensehandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	expensestore "hr-office-backend/lib/expense-report/store"
	"hr-office-backend/models"
	expenseapimodels "hr-office-backend/models/api/expense"
	missionapimodels "hr-office-backend/models/api/mission"
	dbmodels "hr-office-backend/models/db"
)

type fakeExpenseStore struct {
	recs      map[string]dbmodels.ExpenseReport
	updates   map[string]map[string]interface{}
	pending   map[string]int64 // map[assignationID]кол-во невозмещенных строк
	deleted   []string
	created   []dbmodels.ExpenseReport
	callCount int
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{
		recs:    map[string]dbmodels.ExpenseReport{},
		updates: map[string]map[string]interface{}{},
		pending: map[string]int64{},
	}
}

func (f *fakeExpenseStore) Create(rec dbmodels.ExpenseReport) (string, error) {
	f.created = append(f.created, rec)
	return "new-id", nil
}

func (f *fakeExpenseStore) GetByID(id string) (*dbmodels.ExpenseReport, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeExpenseStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeExpenseStore) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeExpenseStore) ListByAssignationID(assignationID string) ([]dbmodels.ExpenseReport, error) {
	return nil, nil
}

func (f *fakeExpenseStore) DistinctStatusesByAssignationID(assignationID string) ([]models.ExpenseStatus, error) {
	seen := map[models.ExpenseStatus]bool{}
	statuses := []models.ExpenseStatus{}
	for _, rec := range f.recs {
		if rec.AssignationID != assignationID || seen[rec.Status] {
			continue
		}
		seen[rec.Status] = true
		statuses = append(statuses, rec.Status)
	}
	return statuses, nil
}

func (f *fakeExpenseStore) ReimburseByAssignationID(assignationID string) (int64, error) {
	f.callCount++
	affected := f.pending[assignationID]
	f.pending[assignationID] = 0
	return affected, nil
}

func (f *fakeExpenseStore) Queue(filter expenseapimodels.QueueFilter) ([]expensestore.QueueRow, error) {
	return nil, nil
}

func (f *fakeExpenseStore) QueueCount(filter expenseapimodels.QueueFilter) (int64, error) {
	return 0, nil
}

type fakeAssignationStore struct {
	recs map[string]dbmodels.MissionAssignation
}

func (f *fakeAssignationStore) Create(rec dbmodels.MissionAssignation) (string, error) {
	return "new-id", nil
}

func (f *fakeAssignationStore) GetByID(id string) (*dbmodels.MissionAssignation, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAssignationStore) GetByEmployeeAndMission(employeeID, missionID string) (*dbmodels.MissionAssignation, error) {
	return nil, nil
}

func (f *fakeAssignationStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeAssignationStore) Delete(id string) error { return nil }

func (f *fakeAssignationStore) List(filter missionapimodels.AssignationFilter) ([]dbmodels.MissionAssignation, error) {
	return nil, nil
}

func (f *fakeAssignationStore) ListCount(filter missionapimodels.AssignationFilter) (int64, error) {
	return 0, nil
}

type fakeTypeStore struct {
	recs map[string]dbmodels.ExpenseReportType
}

func (f *fakeTypeStore) Create(rec dbmodels.ExpenseReportType) (string, error) {
	return "new-id", nil
}

func (f *fakeTypeStore) GetByID(id string) (*dbmodels.ExpenseReportType, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeTypeStore) Delete(id string) error { return nil }

func (f *fakeTypeStore) List() ([]dbmodels.ExpenseReportType, error) { return nil, nil }

func TestReimburse(t *testing.T) {
	assignations := &fakeAssignationStore{recs: map[string]dbmodels.MissionAssignation{
		"as-1": {EmployeeID: "emp-1"},
	}}

	t.Run(`возмещаются все ожидающие строки`, func(t *testing.T) {
		store := newFakeExpenseStore()
		store.pending["as-1"] = 3
		handler := impl{store: store, assignationStore: assignations}

		affected, err := handler.Reimburse("as-1")
		require.Nil(t, err)
		require.Equal(t, int64(3), affected)
	})

	t.Run(`повторный вызов идемпотентен`, func(t *testing.T) {
		store := newFakeExpenseStore()
		store.pending["as-1"] = 2
		store.recs["exp-1"] = dbmodels.ExpenseReport{AssignationID: "as-1", Status: models.ExpenseReimbursed}
		store.recs["exp-2"] = dbmodels.ExpenseReport{AssignationID: "as-1", Status: models.ExpenseReimbursed}
		handler := impl{store: store, assignationStore: assignations}

		affected, err := handler.Reimburse("as-1")
		require.Nil(t, err)
		require.Equal(t, int64(2), affected)

		affected, err = handler.Reimburse("as-1")
		require.Nil(t, err)
		require.Equal(t, int64(0), affected)
		require.Equal(t, 2, store.callCount)
	})

	t.Run(`назначение без строк расходов - ErrNotFound`, func(t *testing.T) {
		handler := impl{store: newFakeExpenseStore(), assignationStore: assignations}

		_, err := handler.Reimburse("as-1")
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`несуществующее назначение - ErrNotFound`, func(t *testing.T) {
		handler := impl{store: newFakeExpenseStore(), assignationStore: assignations}

		_, err := handler.Reimburse("missing")
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))
	})
}

func TestExpenseCreate(t *testing.T) {
	assignations := &fakeAssignationStore{recs: map[string]dbmodels.MissionAssignation{
		"as-1": {EmployeeID: "emp-1"},
	}}
	types := &fakeTypeStore{recs: map[string]dbmodels.ExpenseReportType{
		"type-1": {Name: "Taxi"},
	}}

	data := expenseapimodels.ExpenseReportData{
		AssignationID: "as-1",
		TypeID:        "type-1",
		Title:         "Taxi aéroport",
		Amount:        12000,
	}

	t.Run(`новая строка создается в статусе pending`, func(t *testing.T) {
		store := newFakeExpenseStore()
		handler := impl{store: store, typeStore: types, assignationStore: assignations}

		id, err := handler.Create(data)
		require.Nil(t, err)
		require.Equal(t, "new-id", id)
		require.Equal(t, 1, len(store.created))
		require.Equal(t, models.ExpensePending, store.created[0].Status)
	})

	t.Run(`неизвестное назначение - ErrBadRequest`, func(t *testing.T) {
		handler := impl{store: newFakeExpenseStore(), typeStore: types, assignationStore: assignations}
		bad := data
		bad.AssignationID = "missing"

		_, err := handler.Create(bad)
		require.Equal(t, true, errors.Is(err, models.ErrBadRequest))
	})

	t.Run(`неизвестный тип расходов - ErrBadRequest`, func(t *testing.T) {
		handler := impl{store: newFakeExpenseStore(), typeStore: types, assignationStore: assignations}
		bad := data
		bad.TypeID = "missing"

		_, err := handler.Create(bad)
		require.Equal(t, true, errors.Is(err, models.ErrBadRequest))
	})
}

func TestExpenseStatuses(t *testing.T) {
	t.Run(`смешанные статусы - оба значения в наборе`, func(t *testing.T) {
		store := newFakeExpenseStore()
		store.recs["exp-1"] = dbmodels.ExpenseReport{AssignationID: "as-1", Status: models.ExpensePending}
		store.recs["exp-2"] = dbmodels.ExpenseReport{AssignationID: "as-1", Status: models.ExpenseReimbursed}
		store.recs["exp-3"] = dbmodels.ExpenseReport{AssignationID: "as-2", Status: models.ExpensePending}
		handler := impl{store: store}

		statuses, err := handler.GetStatusesByAssignationID("as-1")
		require.Nil(t, err)
		require.ElementsMatch(t, []models.ExpenseStatus{models.ExpensePending, models.ExpenseReimbursed}, statuses)
	})

	t.Run(`все строки возмещены - единственный статус`, func(t *testing.T) {
		store := newFakeExpenseStore()
		store.recs["exp-1"] = dbmodels.ExpenseReport{AssignationID: "as-1", Status: models.ExpenseReimbursed}
		store.recs["exp-2"] = dbmodels.ExpenseReport{AssignationID: "as-1", Status: models.ExpenseReimbursed}
		handler := impl{store: store}

		statuses, err := handler.GetStatusesByAssignationID("as-1")
		require.Nil(t, err)
		require.Equal(t, []models.ExpenseStatus{models.ExpenseReimbursed}, statuses)
	})

	t.Run(`без строк расходов - пустой набор`, func(t *testing.T) {
		handler := impl{store: newFakeExpenseStore()}

		statuses, err := handler.GetStatusesByAssignationID("as-1")
		require.Nil(t, err)
		require.Equal(t, 0, len(statuses))
	})
}

func TestExpenseUpdate(t *testing.T) {
	t.Run(`возмещенная строка не редактируется`, func(t *testing.T) {
		store := newFakeExpenseStore()
		store.recs["exp-1"] = dbmodels.ExpenseReport{Status: models.ExpenseReimbursed}
		handler := impl{store: store}

		err := handler.Update("exp-1", expenseapimodels.ExpenseReportData{
			AssignationID: "as-1",
			TypeID:        "type-1",
			Title:         "Taxi",
			Amount:        100,
		})
		require.Equal(t, true, errors.Is(err, models.ErrInvalidState))
	})

	t.Run(`возмещенная строка не удаляется`, func(t *testing.T) {
		store := newFakeExpenseStore()
		store.recs["exp-1"] = dbmodels.ExpenseReport{Status: models.ExpenseReimbursed}
		handler := impl{store: store}

		err := handler.Delete("exp-1")
		require.Equal(t, true, errors.Is(err, models.ErrInvalidState))
		require.Equal(t, 0, len(store.deleted))
	})
}
