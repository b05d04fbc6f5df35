// Package rendererr implements the typed error hierarchy every
// recoverable and unrecoverable failure in the renderer surfaces
// through: unknown scene-description names substituting a documented
// default (ConfigError), missing/corrupt texture and mesh files
// (IOError), out-of-range floating point results discovered mid-render
// (NumericError), a broken invariant caught by a sanity check
// (InvariantViolation), and a failure with no sensible fallback
// (FatalError).
package rendererr

import (
	"fmt"
	"log/slog"
)

// Kind classifies an error by how the renderer should react to it.
type Kind int

const (
	ConfigError Kind = iota
	IOError
	NumericError
	InvariantViolation
	FatalError
)

func (k Kind) String() string {
	switch k {
	case ConfigError:
		return "ConfigError"
	case IOError:
		return "IOError"
	case NumericError:
		return "NumericError"
	case InvariantViolation:
		return "InvariantViolation"
	case FatalError:
		return "FatalError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete type every rendererr constructor returns.
// Recoverable is true for ConfigError/IOError/NumericError (substitute a
// default and keep going) and false for InvariantViolation/FatalError
// (the render driver should abort).
type Error struct {
	Kind        Kind
	Recoverable bool
	Name        string // the offending scene-description name, file path, etc.
	Fallback    string // the default substituted, if any
	Err         error  // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Fallback != "" {
		return fmt.Sprintf("%s: %s (falling back to %s)", e.Kind, e.Name, e.Fallback)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Name)
}

func (e *Error) Unwrap() error { return e.Err }

// Config reports an unrecognized scene-description name (material,
// shape, filter, camera, integrator, ...) that was substituted with a
// documented default.
func Config(name, fallback string) *Error {
	return &Error{Kind: ConfigError, Recoverable: true, Name: name, Fallback: fallback}
}

// IO reports a missing or corrupt external resource (texture file, PLY
// mesh) with the fallback that was used in its place.
func IO(name, fallback string, cause error) *Error {
	return &Error{Kind: IOError, Recoverable: true, Name: name, Fallback: fallback, Err: cause}
}

// Numeric reports an out-of-range floating point result (NaN or
// negative radiance) discovered mid-render; always recoverable, the
// offending sample is simply discarded.
func Numeric(name string) *Error {
	return &Error{Kind: NumericError, Recoverable: true, Name: name}
}

// Invariant reports a broken internal invariant (e.g. a BVH build
// primitive with a NaN bound); never recoverable.
func Invariant(name string) *Error {
	return &Error{Kind: InvariantViolation, Recoverable: false, Name: name}
}

// Fatal reports a failure with no sensible fallback (e.g. an unknown
// camera type, since there is no "default camera" a scene could render
// with); never recoverable.
func Fatal(name string, cause error) *Error {
	return &Error{Kind: FatalError, Recoverable: false, Name: name, Err: cause}
}

// Report logs err at the level its kind warrants and returns it
// unchanged when the caller should abort (InvariantViolation,
// FatalError, or any non-rendererr error), or nil when the caller
// should log-and-continue.
func Report(err error, log *slog.Logger) error {
	if err == nil {
		return nil
	}
	re, ok := err.(*Error)
	if !ok {
		return err
	}
	switch re.Kind {
	case ConfigError, IOError:
		log.Warn(re.Error(), "name", re.Name, "fallback", re.Fallback)
		return nil
	case NumericError:
		log.Error(re.Error(), "name", re.Name)
		return nil
	default:
		log.Error(re.Error(), "name", re.Name)
		return re
	}
}
