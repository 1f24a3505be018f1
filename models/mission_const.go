package models

import "github.com/pkg/errors"

// ValidatorRole - роль в цепочке валидации командировки.
// Порядок фиксирован: сначала руководитель, затем DRH.
type ValidatorRole string

const (
	ValidatorRoleDirector ValidatorRole = "Directeur de tutelle"
	ValidatorRoleDRH      ValidatorRole = "DRH"
)

// ValidationOrder возвращает порядковый номер роли в цепочке.
func (r ValidatorRole) ValidationOrder() int {
	switch r {
	case ValidatorRoleDirector:
		return 1
	case ValidatorRoleDRH:
		return 2
	}
	return 0
}

func (r ValidatorRole) Validate() error {
	switch r {
	case ValidatorRoleDirector, ValidatorRoleDRH:
		return nil
	}
	return errors.Errorf("неизвестная роль валидатора: %v", r)
}

// Значения тристейт-флага is_validated у назначения на командировку:
// nil - на валидации, 1 - валидировано, 0 - отклонено.
const (
	AssignationRejected  = 0
	AssignationValidated = 1
)
