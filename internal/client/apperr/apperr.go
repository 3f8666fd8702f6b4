// Package apperr описывает ошибки, которые видит вызывающий код клиента.
//
// Каждая ошибка относится к одному виду (Kind). Проверка делается через
// errors.Is(err, apperr.ErrAuth) и работает через любое число оберток.
package apperr

import (
	"errors"
	"fmt"
)

// Kind вид ошибки
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuth
	KindStore
	KindSync
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindStore:
		return "store"
	case KindSync:
		return "sync"
	default:
		return "unknown"
	}
}

// Sentinel ошибки по видам, для errors.Is
var (
	ErrValidation = &Error{Kind: KindValidation, Message: "validation error"}
	ErrConflict   = &Error{Kind: KindConflict, Message: "conflict"}
	ErrAuth       = &Error{Kind: KindAuth, Message: "authentication error"}
	ErrStore      = &Error{Kind: KindStore, Message: "local storage error"}
	ErrSync       = &Error{Kind: KindSync, Message: "sync error"}
)

// Error ошибка клиента с видом и сообщением для пользователя
type Error struct {
	Err     error
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is совпадает с любой *Error того же вида
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Validation некорректный ввод
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict нарушение уникальности
func Conflict(message string, err error) error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

// Auth ошибка аутентификации, сообщение намеренно общее
func Auth(message string) error {
	return &Error{Kind: KindAuth, Message: message}
}

// Store сбой локального хранилища
func Store(op string, err error) error {
	return &Error{Kind: KindStore, Message: op, Err: err}
}

// Sync сбой обработчика при обращении к серверу
func Sync(op string, err error) error {
	return &Error{Kind: KindSync, Message: op, Err: err}
}

// KindOf возвращает вид ошибки или 0, если err не *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
