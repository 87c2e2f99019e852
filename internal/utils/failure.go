package utils

import "errors"

type ErrorType int

const (
	ErrInternal ErrorType = iota
	ErrArgument
	ErrResponse
	ErrResolution
	ErrVoiceJoin
)

func (t ErrorType) String() string {
	switch t {
	case ErrArgument:
		return "argument"
	case ErrResponse:
		return "response"
	case ErrResolution:
		return "resolution"
	case ErrVoiceJoin:
		return "voice_join"
	default:
		return "internal"
	}
}

// Failure is an error that is safe to show to the invoking user.
type Failure struct {
	Type    ErrorType
	Message string
	Err     error
}

func (f Failure) Error() string {
	if f.Err == nil {
		return f.Message
	}
	if f.Message == "" {
		return f.Err.Error()
	}
	return f.Message + ": " + f.Err.Error()
}

func (f Failure) Unwrap() error {
	return f.Err
}

func Fail(t ErrorType, message string, err error) Failure {
	return Failure{Type: t, Message: message, Err: err}
}

// TypeOf reports the failure type carried by err, or ErrInternal when err
// is not a Failure.
func TypeOf(err error) ErrorType {
	var f Failure
	if errors.As(err, &f) {
		return f.Type
	}
	return ErrInternal
}

func IsType(err error, t ErrorType) bool {
	var f Failure
	return errors.As(err, &f) && f.Type == t
}
