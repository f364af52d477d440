package cli

import "errors"

var (
	// ErrInvalidOperand is returned by the add command for an argument that
	// is not an integer.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrWrongArgCount is returned by the add command when it does not get
	// exactly two operands.
	ErrWrongArgCount = errors.New("add takes exactly two integers")
)
