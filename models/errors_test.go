package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBusinessErrors(t *testing.T) {
	t.Run(`обернутая ошибка распознается через errors.Is`, func(t *testing.T) {
		err := errors.Wrap(ErrNotFound, "компенсация не найдена")
		require.Equal(t, true, errors.Is(err, ErrNotFound))
		require.Equal(t, false, errors.Is(err, ErrBadRequest))
	})

	t.Run(`неизвестная роль - ErrBadRequest`, func(t *testing.T) {
		err := UserRole("stagiaire").Validate()
		require.Equal(t, true, errors.Is(err, ErrBadRequest))
	})

	t.Run(`известные роли валидны`, func(t *testing.T) {
		require.Nil(t, UserRoleEmployee.Validate())
		require.Nil(t, UserRoleDRH.Validate())
	})
}
