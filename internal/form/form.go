// Package form holds the state of an application draft being edited. Every transition is a
// pure function returning a new State; inputs are never modified.
package form

import (
	"github.com/samandr77/microservices/onboarding/internal/entity"
	"github.com/samandr77/microservices/onboarding/internal/validation"
)

const (
	NoticeFixErrors = "Please fix the errors in the form."
	NoticeSuccess   = "Form submitted successfully!"
	NoticeFailure   = "Submission failed. Please try again."
)

type State struct {
	Values     entity.Application
	Errors     validation.Errors
	Submitting bool
	Notice     string
}

func New(template entity.Application) State {
	return State{
		Values: template,
		Errors: validation.Errors{},
	}
}

// Change sets one field and clears its error. Unknown fields leave the state untouched.
func Change(s State, field, value string) State {
	next := s
	if !next.Values.Set(field, value) {
		return s
	}

	if _, ok := s.Errors[field]; ok {
		next.Errors = s.Errors.Clone()
		delete(next.Errors, field)
	}

	next.Notice = ""

	return next
}

// Submit validates the values. It reports whether the draft may be sent to the backend.
func Submit(s State, rules validation.Rules) (State, bool) {
	if s.Submitting {
		return s, false
	}

	next := s
	next.Errors = validation.ValidateApplication(rules, s.Values)

	if !next.Errors.Empty() {
		next.Notice = NoticeFixErrors
		return next, false
	}

	next.Submitting = true
	next.Notice = ""

	return next, true
}

// Succeeded resets the form to template after a save.
func Succeeded(_ State, template entity.Application) State {
	next := New(template)
	next.Notice = NoticeSuccess

	return next
}

// Failed keeps the values so the user can retry.
func Failed(s State) State {
	next := s
	next.Submitting = false
	next.Notice = NoticeFailure

	return next
}
