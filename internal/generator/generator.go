// Package generator assembles formatted university documents from reference
// data and student fields: it renders the template body, composes the fixed
// visual layout, and derives the unique artifact filename.
package generator

import (
	"fmt"
	"time"
)

// RenderError reports a template placeholder with no corresponding student
// field. Validation runs before composition, so reaching this under valid
// input indicates a template referencing an unknown field.
type RenderError struct {
	Placeholder string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("template placeholder {%s} has no value", e.Placeholder)
}

// Generator builds documents and filenames. The zero value is not usable;
// construct with New. Safe for concurrent use: all methods are pure functions
// of their inputs plus the clock.
type Generator struct {
	now func() time.Time
}

// New returns a Generator using the wall clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock returns a Generator with an injected clock for tests.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}
