package dialog

import (
	"errors"
	"fmt"
)

// ErrValidation общий предок ошибок пользовательского ввода: диалог
// остается на том же шаге, пользователь может повторить ввод.
var ErrValidation = errors.New("validation failed")

var (
	ErrBadDate          = fmt.Errorf("%w: unparseable date", ErrValidation)
	ErrDateInPast       = fmt.Errorf("%w: check-in date in the past", ErrValidation)
	ErrCheckOutNotAfter = fmt.Errorf("%w: check-out not after check-in", ErrValidation)
	ErrNameTooShort     = fmt.Errorf("%w: guest name too short", ErrValidation)
)

// ErrNoDialog событие не соответствует текущему шагу: активного
// диалога нет, состояние не меняется.
var ErrNoDialog = errors.New("no active dialog")
