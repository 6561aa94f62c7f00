package resetinfer

import "fmt"

// Pos identifies a source location for diagnostics. The containing pass
// framework owns the real location format; this is the minimal shape the
// core needs to attribute an error or note to a spot in the input.
type Pos struct {
	File string
	Line int
	Col  int
}

// NoPos is the zero value, used for synthesized values that have no
// meaningful source location.
var NoPos = Pos{}

func (p Pos) String() string {
	if p == NoPos {
		return "<unknown>"
	}
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}
