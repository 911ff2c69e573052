// Copyright 2026 The Chronos Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chronoerr defines the language-neutral error kinds shared across
// the engine's packages, so a caller at any boundary can type-switch on
// Kind instead of matching error strings.
package chronoerr

import "fmt"

// Kind is one of the language-neutral error kinds from the interface
// contract.
type Kind string

const (
	ZeroDurationViolation Kind = "zero_duration_violation"
	NegativeDuration      Kind = "negative_duration"
	TimeOrderError        Kind = "time_order_error"
	BoundaryConflict      Kind = "boundary_conflict"
	DuplicateID           Kind = "duplicate_id"
	InvalidTransition     Kind = "invalid_transition"
	TimepointsExhausted   Kind = "timepoints_exhausted"
	Unsatisfiable         Kind = "unsatisfiable"
	SolverTimeout         Kind = "solver_timeout"
	InvalidParticipant    Kind = "invalid_participant"
	InvalidIntervalSpec   Kind = "invalid_interval_spec"
)

// Error carries a Kind alongside a human-readable message. Every boundary
// operation that can fail validation returns one of these (wrapped with
// %w where a lower layer already produced one) rather than panicking.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an *Error for the given kind and message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the given kind, unwrapping as
// needed. This lets callers write `chronoerr.Is(err, chronoerr.Unsatisfiable)`.
func Is(err error, kind Kind) bool {
	var ce *Error
	for err != nil {
		if e, ok := err.(*Error); ok {
			ce = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ce != nil && ce.Kind == kind
}
