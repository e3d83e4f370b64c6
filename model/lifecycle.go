package model

import "fmt"

type FormStatus string

const (
	StatusDraft  FormStatus = "DRAFT"
	StatusLive   FormStatus = "LIVE"
	StatusClosed FormStatus = "CLOSED"
)

func ParseStatus(s string) (FormStatus, bool) {
	switch st := FormStatus(s); st {
	case StatusDraft, StatusLive, StatusClosed:
		return st, true
	}
	return "", false
}

// CLOSED is terminal: nothing transitions out of it.
var transitions = map[FormStatus][]FormStatus{
	StatusDraft: {StatusLive, StatusClosed},
	StatusLive:  {StatusDraft, StatusClosed},
}

func CanTransition(from, to FormStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the form to the target status. It is the only writer of
// Status; only the owner may call it.
func (f *Form) Transition(actor Actor, to FormStatus) error {
	if actor.ID != f.OwnerID {
		return ErrUnauthorized
	}
	if !CanTransition(f.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.Status, to)
	}
	f.Status = to
	return nil
}
