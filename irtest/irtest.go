// Package irtest provides test helpers for comparing the result of running
// the pass against itself or against an expected shape: a small
// compare-two-things-and-report-a-readable-diff toolkit.
package irtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/resetinfer"
)

// AssertNoError fails the test immediately if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
}

// PortShape is a snapshot of one port's externally visible shape, used to
// compare a module's interface before/after a pass run without comparing
// unexported internals.
type PortShape struct {
	Name string
	Dir  string
	Type string
}

// Snapshot captures m's port list as a comparable, printable value.
func Snapshot(m *resetinfer.Module) []PortShape {
	out := make([]PortShape, len(m.Ports))
	for i, p := range m.Ports {
		out[i] = PortShape{Name: p.Name, Dir: p.Dir.String(), Type: p.Typ.String()}
	}
	return out
}

// AssertSamePorts fails the test with a readable diff if got != want.
func AssertSamePorts(t *testing.T, got, want []PortShape) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("port count mismatch: got %d, want %d\ngot:  %s\nwant: %s", len(got), len(want), formatPorts(got), formatPorts(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("port %d mismatch: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func formatPorts(ps []PortShape) string {
	var parts []string
	for _, p := range ps {
		parts = append(parts, fmt.Sprintf("%s:%s %s", p.Name, p.Dir, p.Type))
	}
	return strings.Join(parts, ", ")
}

// AssertIdempotent runs run twice over the same circuit-producing thunk
// and asserts that the top module's port shape is identical both times,
// i.e. that a second pass over already-resolved output is a no-op at the
// interface level.
func AssertIdempotent(t *testing.T, build func() *resetinfer.Circuit, run func(*resetinfer.Circuit) error) {
	t.Helper()
	c1 := build()
	AssertNoError(t, run(c1))
	top1, err := c1.TopModule()
	AssertNoError(t, err)
	snap1 := Snapshot(top1)

	AssertNoError(t, run(c1))
	top2, err := c1.TopModule()
	AssertNoError(t, err)
	snap2 := Snapshot(top2)

	AssertSamePorts(t, snap2, snap1)
}
