package cpu

import (
	"errors"
	"fmt"
)

// ErrStepBudgetExceeded is returned by Run when maxSteps is reached
// without the program halting — needed to terminate the self-looping
// branch scenario in SPEC_FULL.md §8 ("test with a step budget").
var ErrStepBudgetExceeded = errors.New("cpu: step budget exceeded")

// UnknownOpcodeError is returned by Step when StrictOpcodes is set and
// an unmapped opcode byte is fetched.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unknown opcode %#02x at pc=%#04x", e.Opcode, e.PC)
}
