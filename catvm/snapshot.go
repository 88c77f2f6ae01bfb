package catvm

import (
	"fmt"
	"strings"
)

type Snapshot struct {
	Tick   int64
	IP     int
	Instr  byte
	Tape   string
	Source string

	Pos   int
	Stack []int64
	Cells map[int][]int64
}

// Snapshot captures the machine state after the last executed instruction.
func (m *Machine) Snapshot() Snapshot {
	cells := make(map[int][]int64)
	for _, pos := range m.Tape.Cells() {
		cells[pos] = m.Tape.Stack(pos)
	}
	var instr byte
	if m.lastIP < len(m.program.Code) {
		instr = m.program.Code[m.lastIP].Char()
	}
	return Snapshot{
		Tick:   m.Ticks,
		IP:     m.lastIP,
		Instr:  instr,
		Tape:   m.Tape.Render(),
		Source: m.program.Source,
		Pos:    m.Tape.Pos(),
		Stack:  m.Tape.Stack(m.Tape.Pos()),
		Cells:  cells,
	}
}

func (s Snapshot) Render() string {
	return s.RenderWidth(0)
}

// RenderWidth is like Render but shows at most width source characters around IP.
func (s Snapshot) RenderWidth(width int) string {
	source := s.Source
	marker := s.IP
	if width > 0 && len(source) > width {
		start := max(0, s.IP-width/2)
		end := min(len(source), start+width)
		start = max(0, end-width)
		source = source[start:end]
		marker -= start
	}
	buf := new(strings.Builder)
	fmt.Fprintf(buf, "tick %d ip %d instruction %q\n", s.Tick, s.IP, s.Instr)
	buf.WriteString(s.Tape)
	buf.WriteString("\n")
	buf.WriteString(source)
	buf.WriteString("\n")
	buf.WriteString(strings.Repeat(" ", marker))
	buf.WriteString("^")
	return buf.String()
}
