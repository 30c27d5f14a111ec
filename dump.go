package tabulatedfunction

import (
	"github.com/kylelemons/godebug/pretty"
)

// Dump is a detached snapshot of a TabulatedFunction, used for debugging
// and comparisons.
type Dump struct {
	Count    int
	Capacity int
	Epsilon  float64
	Points   []Point
}

// Dump returns a snapshot of f. Later changes to f do not affect it.
func (f *TabulatedFunction) Dump() *Dump {
	return &Dump{
		Count:    len(f.p),
		Capacity: cap(f.p),
		Epsilon:  f.epsilon,
		Points:   f.Points(),
	}
}

var dumpConfig = &pretty.Config{Compact: true}

func (f *TabulatedFunction) String() string {
	return "Tabulated function: " + dumpConfig.Sprint(f.Dump())
}
