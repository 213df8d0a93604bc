package usecase

import (
	"errors"
	"fmt"
)

var (
	//422 入力不正・必須項目不足
	ErrValidation = errors.New("validation error")
	//404 対象なし
	ErrNotFound = errors.New("not found")
	//500 メール送信失敗
	ErrDelivery = errors.New("delivery error")
	//500 DBエラー
	ErrStore = errors.New("store error")
)

// Kindはerrors.Isで判定する
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind error, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
