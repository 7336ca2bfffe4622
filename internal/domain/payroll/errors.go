package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid payroll input")
	ErrNameRequired = fmt.Errorf("%w: worker name is required", ErrInvalidInput)
	ErrInvalidGross = fmt.Errorf("%w: gross salary must be greater than 0", ErrInvalidInput)
)
