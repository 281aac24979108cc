// Package memory implements the flat 64 KiB address space the CPU
// interpreter operates on.
package memory

import "github.com/bdwalton/gintendo/rom"

// Region boundaries, per https://www.nesdev.org/wiki/CPU_memory_map.
// The core treats every region as plain read/write bytes; only the
// PRG window is ever populated by LoadROM, and no region is
// write-protected (that's a mapper-layer concern this core omits).
const (
	Size = 0x10000

	ppuRegStart   = 0x2000
	ppuRegMirrors = 0x4000
	ioRegEnd      = 0x4020
	PRGBase       = ioRegEnd
)

// Memory is a flat, zero-filled-at-construction 64 KiB byte array.
type Memory struct {
	data [Size]byte
}

// New returns a zero-filled Memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at addr. Every address in [0, 0x10000) is legal.
func (m *Memory) Read(addr uint16) uint8 {
	return m.data[addr]
}

// Write stores val at addr. Every address in [0, 0x10000) is legal.
func (m *Memory) Write(addr uint16, val uint8) {
	m.data[addr] = val
}

// Read16 returns the little-endian word at addr: low byte first.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := uint16(m.Read(addr))
	hi := uint16(m.Read(addr + 1))
	return lo | hi<<8
}

// Write16 stores val at addr, low byte first.
func (m *Memory) Write16(addr uint16, val uint16) {
	m.Write(addr, uint8(val))
	m.Write(addr+1, uint8(val>>8))
}

// LoadROM copies r's PRG bytes into the PRG ROM window starting at
// PRGBase. CHR is never copied; this core has no PPU to read it.
func (m *Memory) LoadROM(r *rom.ROM) {
	copy(m.data[PRGBase:], r.PRG)
}
