package tree

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind is the kind of a node. It never changes once a node is built.
type Kind int32

const (
	Terminal Kind = iota
	Max
	Min
)

// Opponent returns the kind that moves after k. Terminal has no opponent.
func (k Kind) Opponent() Kind {
	switch k {
	case Max:
		return Min
	case Min:
		return Max
	}
	return Terminal
}

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Max:
		return "max"
	case Min:
		return "min"
	}
	return "UNKNOWN KIND"
}

func (k Kind) Format(s fmt.State, c rune) {
	switch c {
	case 's': // used in frame text
		switch k {
		case Terminal:
			fmt.Fprint(s, "□")
		case Max:
			fmt.Fprint(s, "△")
		case Min:
			fmt.Fprint(s, "▽")
		default:
			fmt.Fprint(s, k.String())
		}
	default:
		fmt.Fprint(s, k.String())
	}
}

// ParseKind parses the lower case name of a kind ("terminal", "max" or "min").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "terminal", "leaf":
		return Terminal, nil
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	}
	return Terminal, errors.Errorf("unknown node kind %q", s)
}
