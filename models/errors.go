package models

import (
	"github.com/pkg/errors"
)

// Ошибки бизнес-логики. Обработчики оборачивают их через errors.Wrap,
// BaseAPIController.SendError маппит на HTTP статусы.
var (
	ErrNotFound     = errors.New("запись не найдена")
	ErrBadRequest   = errors.New("некорректный запрос")
	ErrForbidden    = errors.New("действие запрещено")
	ErrInvalidState = errors.New("недопустимое состояние")
)
