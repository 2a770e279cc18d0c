package charts

import (
	"math"
	"strconv"
	"strings"
)

type PathCommand struct {
	Op   byte
	Args []float64
}

// LargeArc reports the large-arc flag of an arc command.
func (c PathCommand) LargeArc() bool {
	return c.Op == 'A' && len(c.Args) == 7 && c.Args[3] == 1
}

// Sweep reports the sweep flag of an arc command.
func (c PathCommand) Sweep() bool {
	return c.Op == 'A' && len(c.Args) == 7 && c.Args[4] == 1
}

// End gives the point reached by the command.
func (c PathCommand) End() (Pos, bool) {
	if n := len(c.Args); n >= 2 {
		return NewPos(c.Args[n-2], c.Args[n-1]), true
	}
	return Pos{}, false
}

type Path struct {
	commands []PathCommand
}

func (p *Path) AbsMoveTo(pos Pos) {
	p.push('M', pos.X, pos.Y)
}

func (p *Path) AbsLineTo(pos Pos) {
	p.push('L', pos.X, pos.Y)
}

func (p *Path) AbsArcTo(pos Pos, rx, ry, rot float64, large, sweep bool) {
	p.push('A', rx, ry, rot, flag(large), flag(sweep), pos.X, pos.Y)
}

func (p *Path) ClosePath() {
	p.push('Z')
}

func (p Path) Commands() []PathCommand {
	return p.commands
}

func (p Path) Arcs() []PathCommand {
	var list []PathCommand
	for _, c := range p.commands {
		if c.Op == 'A' {
			list = append(list, c)
		}
	}
	return list
}

func (p Path) Empty() bool {
	return len(p.commands) == 0
}

func (p Path) String() string {
	var str strings.Builder
	for i, c := range p.commands {
		if i > 0 {
			str.WriteByte(' ')
		}
		str.WriteByte(c.Op)
		for j, a := range c.Args {
			if j > 0 {
				str.WriteByte(' ')
			}
			str.WriteString(formatCoord(a))
		}
	}
	return str.String()
}

func (p *Path) push(op byte, args ...float64) {
	p.commands = append(p.commands, PathCommand{
		Op:   op,
		Args: args,
	})
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func formatCoord(f float64) string {
	f = math.Round(f*1000) / 1000
	if f == 0 {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
