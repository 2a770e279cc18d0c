package charts

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrContainerNotFound = errors.New("container not found")
	ErrInstanceNotFound  = errors.New("chart instance not found")
	ErrInvalidViewport   = errors.New("invalid viewport")
)

type UnsupportedTypeError struct {
	Type string
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported chart type: %s", e.Type)
}

type ValueError struct {
	Label  string
	Value  float64
	Reason string
}

func (e ValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %s (%s)", e.Label, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Reason)
}

type ColorError struct {
	Color string
	Err   error
}

func (e ColorError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: invalid color", e.Color)
	}
	return fmt.Sprintf("%s: invalid color: %s", e.Color, e.Err)
}

func (e ColorError) Unwrap() error {
	return e.Err
}
