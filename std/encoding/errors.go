package encoding

import "fmt"

type ErrFormat struct {
	Msg string
}

func (e ErrFormat) Error() string {
	return e.Msg
}

type ErrUnexpected struct {
	Err error
}

func (e ErrUnexpected) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Err)
}

func (e ErrUnexpected) Unwrap() error {
	return e.Err
}
