package resetinfer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Diagnostic is an error attributed to a source location, optionally
// carrying notes that point at other locations relevant to the failure
// (e.g. the two conflicting reset drivers of a domain conflict). Notes are
// informational: callers print the primary message and then each note.
type Diagnostic struct {
	Loc     Pos
	Message string
	Notes   []Note
	cause   error
}

// Note is a secondary location attached to a Diagnostic.
type Note struct {
	Loc     Pos
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Loc, d.Message)
}

// causedDiagnostic is a Diagnostic wrapping an underlying error. Only this
// form satisfies github.com/pkg/errors' causer interface, so errors.Cause
// unwraps it to the underlying error, while errors.Cause on a plain
// *Diagnostic stops at the diagnostic itself.
type causedDiagnostic struct{ *Diagnostic }

func (c causedDiagnostic) Cause() error { return c.cause }

// WithNote appends a note to d and returns d, for chaining at the call site.
func (d *Diagnostic) WithNote(loc Pos, format string, args ...interface{}) *Diagnostic {
	d.Notes = append(d.Notes, Note{Loc: loc, Message: fmt.Sprintf(format, args...)})
	return d
}

// errorf constructs a *Diagnostic positioned at loc, stack-traced via
// pkg/errors so that higher layers can recover a full trace with %+v.
func errorf(loc Pos, format string, args ...interface{}) error {
	return errors.WithStack(newDiagnostic(loc, format, args...))
}

// newDiagnostic builds a bare *Diagnostic without stack-tracing it, for
// callers that need to attach notes via WithNote before handing the
// result back as an error.
func newDiagnostic(loc Pos, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Loc: loc, Message: fmt.Sprintf(format, args...)}
}

// wrapf wraps an existing error with additional context, preserving the
// original as its cause.
func wrapf(err error, loc Pos, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(causedDiagnostic{&Diagnostic{
		Loc:     loc,
		Message: fmt.Sprintf(format, args...) + ": " + err.Error(),
		cause:   err,
	}})
}
