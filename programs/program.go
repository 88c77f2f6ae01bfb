package programs

import (
	"github.com/reusee/stackcats/isa"
)

// Program is validated, symmetric code with its loop jump table.
type Program struct {
	Source string
	Code   []isa.Op
	// Jumps holds the partner index of every loop bracket and -1 elsewhere.
	Jumps []int
}

type options struct {
	mirror MirrorMode
}

type Option func(*options)

func WithMirror(mode MirrorMode) Option {
	return func(o *options) {
		o.mirror = mode
	}
}

func (p *Program) Len() int {
	return len(p.Code)
}

func (p *Program) String() string {
	return p.Source
}

func Load(src string, opts ...Option) (*Program, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	code := Expand(src, o.mirror)

	ops := make([]isa.Op, len(code))
	for i := range len(code) {
		op, ok := isa.Lookup(code[i])
		if !ok {
			return nil, loadError(i, "invalid character %q", code[i])
		}
		ops[i] = op
	}

	n := len(code)
	for i := range n / 2 {
		if isa.Mirror(code[i]) != code[n-1-i] {
			return nil, loadError(i, "program is not symmetric, %q does not mirror %q", code[i], code[n-1-i])
		}
	}
	if n%2 == 1 && isa.IsPaired(code[n/2]) {
		return nil, loadError(n/2, "centre character %q is part of a pair", code[n/2])
	}

	jumps, err := jumpTable(code, ops)
	if err != nil {
		return nil, err
	}

	return &Program{
		Source: code,
		Code:   ops,
		Jumps:  jumps,
	}, nil
}

// jumpTable pairs every loop closer with the latest unclosed opener of its mirror kind.
func jumpTable(code string, ops []isa.Op) ([]int, error) {
	jumps := make([]int, len(ops))
	for i := range jumps {
		jumps[i] = -1
	}
	var open []int
	for i, op := range ops {
		bracket := op.Info().Bracket
		switch {
		case bracket.Opens():
			open = append(open, i)
		case bracket.Closes():
			if len(open) == 0 {
				return nil, loadError(i, "unmatched %c", code[i])
			}
			start := open[len(open)-1]
			if isa.Mirror(code[start]) != code[i] {
				return nil, loadError(i, "%c closes %c", code[i], code[start])
			}
			open = open[:len(open)-1]
			jumps[start] = i
			jumps[i] = start
		}
	}
	if len(open) > 0 {
		start := open[len(open)-1]
		return nil, loadError(start, "unclosed %c", code[start])
	}
	return jumps, nil
}
