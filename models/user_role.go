package models

type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleDRH      UserRole = "drh"
)

func (r UserRole) Validate() error {
	switch r {
	case UserRoleEmployee, UserRoleDRH:
		return nil
	}
	return ErrBadRequest
}
