package validationhandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"hr-office-backend/models"
	missionapimodels "hr-office-backend/models/api/mission"
	dbmodels "hr-office-backend/models/db"
)

type fakeAssignationStore struct {
	updates map[string]map[string]interface{}
}

func newFakeAssignationStore() *fakeAssignationStore {
	return &fakeAssignationStore{updates: map[string]map[string]interface{}{}}
}

func (f *fakeAssignationStore) Create(rec dbmodels.MissionAssignation) (string, error) {
	return "new-id", nil
}

func (f *fakeAssignationStore) GetByID(id string) (*dbmodels.MissionAssignation, error) {
	return nil, nil
}

func (f *fakeAssignationStore) GetByEmployeeAndMission(employeeID, missionID string) (*dbmodels.MissionAssignation, error) {
	return nil, nil
}

func (f *fakeAssignationStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeAssignationStore) Delete(id string) error { return nil }

func (f *fakeAssignationStore) List(filter missionapimodels.AssignationFilter) ([]dbmodels.MissionAssignation, error) {
	return nil, nil
}

func (f *fakeAssignationStore) ListCount(filter missionapimodels.AssignationFilter) (int64, error) {
	return 0, nil
}

type fakeValidationStore struct {
	updates map[string]map[string]interface{}
}

func newFakeValidationStore() *fakeValidationStore {
	return &fakeValidationStore{updates: map[string]map[string]interface{}{}}
}

func (f *fakeValidationStore) Create(rec dbmodels.MissionValidation) (string, error) {
	return "new-id", nil
}

func (f *fakeValidationStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeValidationStore) ListByAssignationID(assignationID string) ([]dbmodels.MissionValidation, error) {
	return nil, nil
}

func (f *fakeValidationStore) DeleteByAssignationID(assignationID string) error { return nil }

func buildAssignation(directorStatus, drhStatus models.ApprovalStatus) dbmodels.MissionAssignation {
	rec := dbmodels.MissionAssignation{EmployeeID: "emp-1"}
	rec.ID = "as-1"
	director := dbmodels.MissionValidation{
		AssignationID: rec.ID,
		ValidatorRole: models.ValidatorRoleDirector,
		ValidatorID:   "director",
		Status:        directorStatus,
	}
	director.ID = "val-director"
	drh := dbmodels.MissionValidation{
		AssignationID: rec.ID,
		ValidatorRole: models.ValidatorRoleDRH,
		ValidatorID:   "drh",
		Status:        drhStatus,
	}
	drh.ID = "val-drh"
	rec.Validations = []dbmodels.MissionValidation{director, drh}
	return rec
}

func TestValidateTx(t *testing.T) {
	handler := impl{}

	t.Run(`валидация руководителем не закрывает назначение`, func(t *testing.T) {
		store := newFakeAssignationStore()
		valStore := newFakeValidationStore()
		rec := buildAssignation(models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting)

		validated, err := handler.validateTx(store, valStore, rec, "director", missionapimodels.DecisionData{Comment: "ok"})
		require.Nil(t, err)
		require.Equal(t, false, validated)

		updMap := valStore.updates["val-director"]
		require.Equal(t, models.ApprovalStatusApproved, updMap["status"])
		require.Equal(t, 0, len(store.updates))
	})

	t.Run(`валидация DRH помечает назначение валидированным`, func(t *testing.T) {
		store := newFakeAssignationStore()
		valStore := newFakeValidationStore()
		rec := buildAssignation(models.ApprovalStatusApproved, models.ApprovalStatusAwaiting)

		validated, err := handler.validateTx(store, valStore, rec, "drh", missionapimodels.DecisionData{})
		require.Nil(t, err)
		require.Equal(t, true, validated)
		require.Equal(t, models.AssignationValidated, store.updates["as-1"]["is_validated"])
	})

	t.Run(`DRH не может валидировать раньше руководителя`, func(t *testing.T) {
		rec := buildAssignation(models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting)

		_, err := handler.validateTx(newFakeAssignationStore(), newFakeValidationStore(), rec, "drh", missionapimodels.DecisionData{})
		require.Equal(t, true, errors.Is(err, models.ErrForbidden))
	})

	t.Run(`завершенное назначение не валидируется повторно`, func(t *testing.T) {
		rec := buildAssignation(models.ApprovalStatusApproved, models.ApprovalStatusApproved)
		validated := models.AssignationValidated
		rec.IsValidated = &validated

		_, err := handler.validateTx(newFakeAssignationStore(), newFakeValidationStore(), rec, "drh", missionapimodels.DecisionData{})
		require.Equal(t, true, errors.Is(err, models.ErrInvalidState))
	})
}

func TestRejectTx(t *testing.T) {
	handler := impl{}

	t.Run(`отклонение этапа отклоняет назначение целиком`, func(t *testing.T) {
		store := newFakeAssignationStore()
		valStore := newFakeValidationStore()
		rec := buildAssignation(models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting)

		err := handler.rejectTx(store, valStore, rec, "director", missionapimodels.DecisionData{Comment: "non"})
		require.Nil(t, err)

		updMap := valStore.updates["val-director"]
		require.Equal(t, models.ApprovalStatusRejected, updMap["status"])
		require.Equal(t, "non", updMap["comment"])
		require.Equal(t, models.AssignationRejected, store.updates["as-1"]["is_validated"])

		// этап DRH не трогаем
		_, ok := valStore.updates["val-drh"]
		require.Equal(t, false, ok)
	})
}
