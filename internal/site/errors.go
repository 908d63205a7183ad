package site

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfigValidation matches any *ValidationError via errors.Is.
	ErrConfigValidation = errors.New("site config validation failed")
	// ErrUnknownLinkKey matches any *UnknownLinkKeyError via errors.Is.
	ErrUnknownLinkKey = errors.New("unknown link key")
	// ErrUnknownConfigField classifies strict YAML failures caused by unknown keys.
	ErrUnknownConfigField = errors.New("unknown config field")
)

// UnknownLinkKeyError is returned when a link key is not present in Config.Links.
type UnknownLinkKeyError struct {
	Key LinkKey
	// Ref names the configuration element holding the reference, e.g. "variants[home].primary_cta".
	Ref string
}

// Error implements the error interface.
func (e *UnknownLinkKeyError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("unknown link key %q", string(e.Key))
	}
	return fmt.Sprintf("%s: unknown link key %q", e.Ref, string(e.Key))
}

// Is reports whether target is ErrUnknownLinkKey.
func (e *UnknownLinkKeyError) Is(target error) bool {
	return target == ErrUnknownLinkKey
}

// ValidationError lists every problem found while validating a Source.
type ValidationError struct {
	problems []string
	causes   []error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("site config validation failed: [%s]", strings.Join(e.problems, "; "))
}

// Problems returns a copy of the problem list in detection order.
func (e *ValidationError) Problems() []string {
	out := make([]string, len(e.problems))
	copy(out, e.problems)
	return out
}

// Is reports whether target is ErrConfigValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrConfigValidation
}

// Unwrap exposes typed causes such as *UnknownLinkKeyError.
func (e *ValidationError) Unwrap() []error {
	return e.causes
}

type problems struct {
	list   []string
	causes []error
}

func (p *problems) addf(format string, args ...any) {
	p.list = append(p.list, fmt.Sprintf(format, args...))
}

func (p *problems) addErr(err error) {
	p.list = append(p.list, err.Error())
	p.causes = append(p.causes, err)
}

func (p *problems) err() error {
	if len(p.list) == 0 {
		return nil
	}
	return &ValidationError{problems: p.list, causes: p.causes}
}
