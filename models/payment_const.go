package models

import "github.com/pkg/errors"

// CompensationStatus - статус выплаты суточных по назначению.
type CompensationStatus string

const (
	CompensationNotPaid CompensationStatus = "not paid"
	CompensationPaid    CompensationStatus = "paid"
)

func (s CompensationStatus) Validate() error {
	switch s {
	case CompensationNotPaid, CompensationPaid:
		return nil
	}
	return errors.Errorf("неизвестный статус выплаты: %v", s)
}

// ExpenseStatus - статус возмещения строки авансового отчета.
type ExpenseStatus string

const (
	ExpensePending    ExpenseStatus = "pending"
	ExpenseReimbursed ExpenseStatus = "reimbursed"
)

func (s ExpenseStatus) Validate() error {
	switch s {
	case ExpensePending, ExpenseReimbursed:
		return nil
	}
	return errors.Errorf("неизвестный статус возмещения: %v", s)
}
