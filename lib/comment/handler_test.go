package commentprovider

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"hr-office-backend/models"
	recruitmentapimodels "hr-office-backend/models/api/recruitment"
	dbmodels "hr-office-backend/models/db"
)

type fakeCommentStore struct {
	recs    map[string]dbmodels.Comment
	updates map[string]map[string]interface{}
	deleted []string
	created []dbmodels.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{
		recs:    map[string]dbmodels.Comment{},
		updates: map[string]map[string]interface{}{},
	}
}

func (f *fakeCommentStore) Create(rec dbmodels.Comment) (string, error) {
	f.created = append(f.created, rec)
	return "new-id", nil
}

func (f *fakeCommentStore) GetByID(id string) (*dbmodels.Comment, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeCommentStore) Update(id string, updMap map[string]interface{}) error {
	f.updates[id] = updMap
	return nil
}

func (f *fakeCommentStore) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCommentStore) ListByRequestID(requestID string) ([]dbmodels.Comment, error) {
	return nil, nil
}

func (f *fakeCommentStore) ListByAssignationID(assignationID string) ([]dbmodels.Comment, error) {
	return nil, nil
}

func TestCommentCreate(t *testing.T) {
	t.Run(`комментарий к заявке привязывается к заявке и автору`, func(t *testing.T) {
		store := newFakeCommentStore()
		handler := impl{store: store}

		id, err := handler.CreateForRequest("req-1", "author-1", recruitmentapimodels.CommentData{Text: "à revoir"})
		require.Nil(t, err)
		require.Equal(t, "new-id", id)
		require.Equal(t, 1, len(store.created))
		require.NotNil(t, store.created[0].RequestID)
		require.Equal(t, "req-1", *store.created[0].RequestID)
		require.Equal(t, "author-1", store.created[0].AuthorID)
	})

	t.Run(`пустой текст - ErrBadRequest`, func(t *testing.T) {
		handler := impl{store: newFakeCommentStore()}

		_, err := handler.CreateForRequest("req-1", "author-1", recruitmentapimodels.CommentData{})
		require.Equal(t, true, errors.Is(err, models.ErrBadRequest))
	})
}

func TestCommentAuthorOnly(t *testing.T) {
	buildStore := func() *fakeCommentStore {
		store := newFakeCommentStore()
		store.recs["comment-1"] = dbmodels.Comment{AuthorID: "author-1", Text: "initial"}
		return store
	}

	t.Run(`автор может обновить`, func(t *testing.T) {
		store := buildStore()
		handler := impl{store: store}

		err := handler.Update("comment-1", "author-1", recruitmentapimodels.CommentData{Text: "corrigé"})
		require.Nil(t, err)
		require.Equal(t, "corrigé", store.updates["comment-1"]["text"])
	})

	t.Run(`чужой комментарий не обновить - ErrForbidden`, func(t *testing.T) {
		handler := impl{store: buildStore()}

		err := handler.Update("comment-1", "author-2", recruitmentapimodels.CommentData{Text: "x"})
		require.Equal(t, true, errors.Is(err, models.ErrForbidden))
	})

	t.Run(`чужой комментарий не удалить - ErrForbidden`, func(t *testing.T) {
		store := buildStore()
		handler := impl{store: store}

		err := handler.Delete("comment-1", "author-2")
		require.Equal(t, true, errors.Is(err, models.ErrForbidden))
		require.Equal(t, 0, len(store.deleted))
	})

	t.Run(`несуществующий комментарий - ErrNotFound`, func(t *testing.T) {
		handler := impl{store: newFakeCommentStore()}

		err := handler.Delete("missing", "author-1")
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))
	})
}
