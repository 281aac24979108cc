// Package trace formats one executed instruction as a single
// human-readable line: register snapshot, status flags, and the
// opcode that was just decoded. The format mirrors the register/flag
// dump a 6502 interpreter conventionally prints for debugging.
package trace

import (
	"fmt"
	"strings"
)

// Flag bit layout, matching package cpu's non-hardware ordering.
const (
	flagCarry            uint8 = 1 << 7
	flagZero             uint8 = 1 << 6
	flagInterruptDisable uint8 = 1 << 5
	flagDecimal          uint8 = 1 << 4
	flagBreak            uint8 = 1 << 3
	flagOverflow         uint8 = 1 << 2
	flagNegative         uint8 = 1 << 1
)

var flagLetters = []struct {
	mask uint8
	ch   byte
}{
	{flagCarry, 'C'},
	{flagZero, 'Z'},
	{flagInterruptDisable, 'I'},
	{flagDecimal, 'D'},
	{flagBreak, 'B'},
	{flagOverflow, 'V'},
	{flagNegative, 'N'},
}

// statusString renders p as a 7-character flag string: the letter
// when set, a dot when clear, in the fixed C Z I D B V N order.
func statusString(p uint8) string {
	var sb strings.Builder
	for _, f := range flagLetters {
		if p&f.mask != 0 {
			sb.WriteByte(f.ch)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Line is the register and decode state trace.Format renders. Mode is
// the addressing mode's display name (addrMode.String() in package
// cpu); it is passed as a string so this package stays decoupled from
// cpu's types.
type Line struct {
	PC       uint16
	Opcode   uint8
	Mnemonic string
	Mode     string
	A, X, Y  uint8
	SP       uint8
	P        uint8
}

// Format renders l as a single trace line, e.g.:
//
//	PC:4020 OP:a9 LDA  immediate    A,X,Y:   0,   0,   0  SP:fd  P:..ID.V.
func Format(l Line) string {
	return fmt.Sprintf(
		"PC:%04x OP:%02x %-4s %-12s A,X,Y: %3d, %3d, %3d  SP:%02x  P:%s",
		l.PC, l.Opcode, l.Mnemonic, l.Mode, l.A, l.X, l.Y, l.SP, statusString(l.P),
	)
}
