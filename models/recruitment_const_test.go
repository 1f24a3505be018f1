package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus(t *testing.T) {
	t.Run(`допустимые переходы из En Attente`, func(t *testing.T) {
		require.Equal(t, true, RequestStatusAwaiting.IsAllowChange(RequestStatusValidated))
		require.Equal(t, true, RequestStatusAwaiting.IsAllowChange(RequestStatusRejected))
	})

	t.Run(`терминальные статусы не меняются`, func(t *testing.T) {
		require.Equal(t, false, RequestStatusValidated.IsAllowChange(RequestStatusAwaiting))
		require.Equal(t, false, RequestStatusValidated.IsAllowChange(RequestStatusRejected))
		require.Equal(t, false, RequestStatusRejected.IsAllowChange(RequestStatusAwaiting))
		require.Equal(t, false, RequestStatusRejected.IsAllowChange(RequestStatusValidated))
	})

	t.Run(`переход в тот же статус недопустим`, func(t *testing.T) {
		require.Equal(t, false, RequestStatusAwaiting.IsAllowChange(RequestStatusAwaiting))
	})

	t.Run(`IsTerminal`, func(t *testing.T) {
		require.Equal(t, false, RequestStatusAwaiting.IsTerminal())
		require.Equal(t, true, RequestStatusValidated.IsTerminal())
		require.Equal(t, true, RequestStatusRejected.IsTerminal())
	})

	t.Run(`Validate отклоняет неизвестный статус`, func(t *testing.T) {
		require.Nil(t, RequestStatusAwaiting.Validate())
		require.NotNil(t, RequestStatus("Annulé").Validate())
	})
}

func TestApprovalStatus(t *testing.T) {
	t.Run(`IsTerminal`, func(t *testing.T) {
		require.Equal(t, false, ApprovalStatusAwaiting.IsTerminal())
		require.Equal(t, true, ApprovalStatusApproved.IsTerminal())
		require.Equal(t, true, ApprovalStatusRejected.IsTerminal())
	})

	t.Run(`Validate отклоняет неизвестный статус`, func(t *testing.T) {
		require.Nil(t, ApprovalStatusApproved.Validate())
		require.NotNil(t, ApprovalStatus("Inconnu").Validate())
	})
}
