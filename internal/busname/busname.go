// Package busname expands and formats bus-style vector element names,
// e.g. "data[3]" or the range form "data[0..3]". No other package in this
// module imports it.
package busname

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Name formats the name of element i of bus.
func Name(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// Expand turns a single name, possibly using the "bus[start..end]" range
// form, into the list of individual element names it denotes. A name with
// no "[" or without the ".." range separator is returned unchanged as a
// single-element slice.
func Expand(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("busname: empty bus name in " + name)
	}
	rest := name[i+1:]
	sep := strings.Index(rest, "..")
	if sep < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(rest[:sep])
	if err != nil {
		return nil, errors.Wrap(err, "busname: invalid range start in "+name)
	}
	rest = rest[sep+2:]
	end := strings.IndexRune(rest, ']')
	if end < 0 {
		return nil, errors.New("busname: missing closing ] in " + name)
	}
	stop, err := strconv.Atoi(rest[:end])
	if err != nil {
		return nil, errors.Wrap(err, "busname: invalid range end in "+name)
	}
	if stop < start {
		return nil, errors.Errorf("busname: empty or reversed range in %s", name)
	}
	out := make([]string, 0, stop-start+1)
	for i := start; i <= stop; i++ {
		out = append(out, Name(bus, i))
	}
	return out, nil
}
