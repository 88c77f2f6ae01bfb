package catvm

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout     = errors.New("tick budget exceeded")
	ErrInterrupted = errors.New("interrupted")
)

type TimeoutError struct {
	Limit int64
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: %d ticks", ErrTimeout.Error(), e.Limit)
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}
