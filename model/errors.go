package model

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Error kinds returned by the core. The routes layer translates them to
// HTTP statuses; the core itself never logs.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrFormNotLive       = errors.New("form not available")
	ErrAlreadyResponded  = errors.New("already responded to this form")
	ErrQuestionMismatch  = errors.New("answer does not match a question of this form")
	ErrInvalidAnswer     = errors.New("invalid answer")
	ErrEmailTaken        = errors.New("user already exists with this email")
)

// ValidationErrors unpacks an aggregated validation failure into its
// individual messages; ok is false when err is not one.
func ValidationErrors(err error) (msgs []string, ok bool) {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return nil, false
	}
	for _, e := range merr.Errors {
		msgs = append(msgs, e.Error())
	}
	return msgs, true
}
