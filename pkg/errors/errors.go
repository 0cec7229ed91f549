package errors

import (
	"errors"
	"fmt"

	"tradevault/pkg/errors/ecode"
)

// 带错误码的error，handler层统一用它包装业务错误
type codeError struct {
	code    int
	message string
	cause   error
}

func (e *codeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *codeError) Unwrap() error {
	return e.cause
}

// WithCode 根据错误码创建一个错误
func WithCode(code int, message string) error {
	if message == "" {
		message = ecode.Message(code)
	}
	return &codeError{code: code, message: message}
}

// Wrap 包装底层错误并附加错误码
func Wrap(err error, code int, message string) error {
	if message == "" {
		message = ecode.Message(code)
	}
	return &codeError{code: code, message: message, cause: err}
}

func Wrapf(err error, code int, format string, args ...interface{}) error {
	return &codeError{code: code, message: fmt.Sprintf(format, args...), cause: err}
}

// DecodeErr 解出错误码和提示信息，nil表示成功
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ecode.Message(ecode.Success)
	}
	var ce *codeError
	if errors.As(err, &ce) {
		return ce.code, ce.message
	}
	return ecode.Unknown, err.Error()
}
