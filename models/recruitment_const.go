package models

import "github.com/pkg/errors"

// ApprovalStatus - статус одного этапа согласования (заявка на найм,
// командировка). Этап из "En Attente" переходит в один из терминальных
// статусов и больше не меняется.
type ApprovalStatus string

const (
	ApprovalStatusAwaiting ApprovalStatus = "En Attente"
	ApprovalStatusApproved ApprovalStatus = "Approuvé"
	ApprovalStatusRejected ApprovalStatus = "Rejeté"
)

func (s ApprovalStatus) Validate() error {
	switch s {
	case ApprovalStatusAwaiting, ApprovalStatusApproved, ApprovalStatusRejected:
		return nil
	}
	return errors.Errorf("неизвестный статус этапа согласования: %v", s)
}

func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// RequestStatus - агрегатный статус заявки на найм. Выводится из статусов
// этапов: все этапы согласованы -> "Validé", любой этап отклонен -> "Rejeté".
type RequestStatus string

const (
	RequestStatusAwaiting  RequestStatus = "En Attente"
	RequestStatusValidated RequestStatus = "Validé"
	RequestStatusRejected  RequestStatus = "Rejeté"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusAwaiting: {RequestStatusValidated, RequestStatusRejected},
}

func (s RequestStatus) Validate() error {
	switch s {
	case RequestStatusAwaiting, RequestStatusValidated, RequestStatusRejected:
		return nil
	}
	return errors.Errorf("неизвестный статус заявки: %v", s)
}

// IsAllowChange проверяет допустимость перехода по таблице переходов.
// Используется и пошаговым согласованием, и административным переводом
// статуса, чтобы оба пути не могли нарушить машину состояний.
func (s RequestStatus) IsAllowChange(to RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusValidated || s == RequestStatusRejected
}
