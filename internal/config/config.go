// Package config defines the command-line configuration for the
// resetinfer CLI: a plain struct populated from flag.FlagSet, the same
// shape the rest of this ecosystem's command-line tools use rather than
// a config file or environment-variable loader.
package config

import (
	"flag"

	"github.com/pkg/errors"
)

// Options holds every flag the CLI accepts.
type Options struct {
	Input         string
	Output        string
	ResetPortName string
	Verbose       bool
}

// Parse populates an Options from args (normally os.Args[1:]).
func Parse(args []string) (*Options, error) {
	fs := flag.NewFlagSet("resetinfer", flag.ContinueOnError)
	o := &Options{}
	fs.StringVar(&o.Input, "in", "", "input circuit fixture name")
	fs.StringVar(&o.Output, "out", "", "output file (accepted but not used; results are logged to stderr)")
	fs.StringVar(&o.ResetPortName, "reset-port", "reset", "fallback name for synthesized reset ports whose inherited reset has no name")
	fs.BoolVar(&o.Verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "config: parsing flags")
	}
	if o.Input == "" {
		return nil, errors.New("config: -in is required")
	}
	return o, nil
}
