package recruitmenthandler

import (
	"encoding/base64"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"hr-office-backend/models"
	recruitmentapimodels "hr-office-backend/models/api/recruitment"
	dbmodels "hr-office-backend/models/db"
)

type fakeRequestStore struct {
	updates map[string]map[string]interface{}
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{updates: map[string]map[string]interface{}{}}
}

func (f *fakeRequestStore) Create(rec dbmodels.RecruitmentRequest) (string, error) {
	return "new-id", nil
}

func (f *fakeRequestStore) GetByID(id string) (*dbmodels.RecruitmentRequest, error) {
	return nil, nil
}

func (f *fakeRequestStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeRequestStore) Delete(id string) error { return nil }

func (f *fakeRequestStore) List(filter recruitmentapimodels.RrFilter) ([]dbmodels.RecruitmentRequest, error) {
	return nil, nil
}

func (f *fakeRequestStore) ListCount(filter recruitmentapimodels.RrFilter) (int64, error) {
	return 0, nil
}

func (f *fakeRequestStore) ListByStatus(status models.RequestStatus) ([]dbmodels.RecruitmentRequest, error) {
	return nil, nil
}

type fakeApprovalStore struct {
	updates map[string]map[string]interface{}
}

func newFakeApprovalStore() *fakeApprovalStore {
	return &fakeApprovalStore{updates: map[string]map[string]interface{}{}}
}

func (f *fakeApprovalStore) Create(rec dbmodels.RecruitmentApproval) (string, error) {
	return "new-id", nil
}

func (f *fakeApprovalStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeApprovalStore) DeleteByRequestID(requestID string) error { return nil }

func (f *fakeApprovalStore) ListByRequestID(requestID string) ([]dbmodels.RecruitmentApproval, error) {
	return nil, nil
}

func buildRequest(statuses ...models.ApprovalStatus) dbmodels.RecruitmentRequest {
	rec := dbmodels.RecruitmentRequest{
		PositionTitle: "Ingénieur",
		Status:        models.RequestStatusAwaiting,
	}
	rec.ID = "req-1"
	for idx, status := range statuses {
		step := dbmodels.RecruitmentApproval{
			RequestID:     rec.ID,
			ApproverID:    []string{"chef", "directeur", "drh"}[idx],
			ApprovalOrder: idx + 1,
			Status:        status,
		}
		step.ID = []string{"step-1", "step-2", "step-3"}[idx]
		rec.Approvals = append(rec.Approvals, step)
	}
	return rec
}

func TestApproveTx(t *testing.T) {
	handler := impl{}

	t.Run(`согласование промежуточного этапа не меняет статус заявки`, func(t *testing.T) {
		store := newFakeRequestStore()
		stepStore := newFakeApprovalStore()
		rec := buildRequest(models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting)

		validated, err := handler.approveTx(store, stepStore, rec, "chef", recruitmentapimodels.DecisionData{Comment: "ok"})
		require.Nil(t, err)
		require.Equal(t, false, validated)

		updMap, ok := stepStore.updates["step-1"]
		require.Equal(t, true, ok)
		require.Equal(t, models.ApprovalStatusApproved, updMap["status"])
		require.Equal(t, "ok", updMap["comment"])
		require.Equal(t, 0, len(store.updates))
	})

	t.Run(`согласование последнего этапа переводит заявку в Validé`, func(t *testing.T) {
		store := newFakeRequestStore()
		stepStore := newFakeApprovalStore()
		rec := buildRequest(models.ApprovalStatusApproved, models.ApprovalStatusApproved, models.ApprovalStatusAwaiting)

		validated, err := handler.approveTx(store, stepStore, rec, "drh", recruitmentapimodels.DecisionData{})
		require.Nil(t, err)
		require.Equal(t, true, validated)

		updMap, ok := store.updates["req-1"]
		require.Equal(t, true, ok)
		require.Equal(t, models.RequestStatusValidated, updMap["status"])
	})

	t.Run(`подпись сохраняется в этапе`, func(t *testing.T) {
		stepStore := newFakeApprovalStore()
		rec := buildRequest(models.ApprovalStatusAwaiting)
		sign := base64.StdEncoding.EncodeToString([]byte("signature"))

		_, err := handler.approveTx(newFakeRequestStore(), stepStore, rec, "chef", recruitmentapimodels.DecisionData{Signature: sign})
		require.Nil(t, err)
		require.Equal(t, []byte("signature"), stepStore.updates["step-1"]["signature"])
	})

	t.Run(`некорректная подпись - ErrBadRequest`, func(t *testing.T) {
		rec := buildRequest(models.ApprovalStatusAwaiting)

		_, err := handler.approveTx(newFakeRequestStore(), newFakeApprovalStore(), rec, "chef", recruitmentapimodels.DecisionData{Signature: "&&&"})
		require.Equal(t, true, errors.Is(err, models.ErrBadRequest))
	})

	t.Run(`не своя очередь - ErrForbidden`, func(t *testing.T) {
		rec := buildRequest(models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting)

		_, err := handler.approveTx(newFakeRequestStore(), newFakeApprovalStore(), rec, "directeur", recruitmentapimodels.DecisionData{})
		require.Equal(t, true, errors.Is(err, models.ErrForbidden))
	})

	t.Run(`терминальная заявка - ErrInvalidState`, func(t *testing.T) {
		rec := buildRequest(models.ApprovalStatusAwaiting)
		rec.Status = models.RequestStatusRejected

		_, err := handler.approveTx(newFakeRequestStore(), newFakeApprovalStore(), rec, "chef", recruitmentapimodels.DecisionData{})
		require.Equal(t, true, errors.Is(err, models.ErrInvalidState))
	})
}

func TestRejectTx(t *testing.T) {
	handler := impl{}

	t.Run(`отклонение этапа закрывает заявку`, func(t *testing.T) {
		store := newFakeRequestStore()
		stepStore := newFakeApprovalStore()
		rec := buildRequest(models.ApprovalStatusApproved, models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting)

		err := handler.rejectTx(store, stepStore, rec, "directeur", recruitmentapimodels.DecisionData{Comment: "non"})
		require.Nil(t, err)

		stepUpd := stepStore.updates["step-2"]
		require.Equal(t, models.ApprovalStatusRejected, stepUpd["status"])
		require.Equal(t, "non", stepUpd["comment"])

		reqUpd := store.updates["req-1"]
		require.Equal(t, models.RequestStatusRejected, reqUpd["status"])

		// оставшиеся этапы не трогаем: цепочка закрыта статусом заявки
		_, ok := stepStore.updates["step-3"]
		require.Equal(t, false, ok)
	})

	t.Run(`отклонять может только согласующий текущего этапа`, func(t *testing.T) {
		rec := buildRequest(models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting)

		err := handler.rejectTx(newFakeRequestStore(), newFakeApprovalStore(), rec, "drh", recruitmentapimodels.DecisionData{})
		require.Equal(t, true, errors.Is(err, models.ErrForbidden))
	})
}

func TestFindApprover(t *testing.T) {
	rec := buildRequest(models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting, models.ApprovalStatusAwaiting)
	for idx := range rec.Approvals {
		rec.Approvals[idx].Approver = &dbmodels.Employee{FirstName: rec.Approvals[idx].ApproverID}
	}

	t.Run(`находит согласующего на любой позиции цепочки`, func(t *testing.T) {
		approver := findApprover(rec, "drh")
		require.NotNil(t, approver)
		require.Equal(t, "drh", approver.FirstName)
	})

	t.Run(`неизвестный согласующий - nil`, func(t *testing.T) {
		require.Nil(t, findApprover(rec, "stagiaire"))
	})
}

func TestChangeStatus(t *testing.T) {
	handler := impl{}

	t.Run(`недопустимый переход - ErrInvalidState`, func(t *testing.T) {
		rec := buildRequest()
		rec.Status = models.RequestStatusValidated

		err := handler.changeStatus(newFakeRequestStore(), rec, models.RequestStatusRejected)
		require.Equal(t, true, errors.Is(err, models.ErrInvalidState))
	})

	t.Run(`допустимый переход пишется в хранилище`, func(t *testing.T) {
		store := newFakeRequestStore()
		rec := buildRequest()

		err := handler.changeStatus(store, rec, models.RequestStatusValidated)
		require.Nil(t, err)
		require.Equal(t, models.RequestStatusValidated, store.updates["req-1"]["status"])
	})
}
