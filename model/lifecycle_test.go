package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to FormStatus
		want     bool
	}{
		{StatusDraft, StatusLive, true},
		{StatusDraft, StatusClosed, true},
		{StatusLive, StatusDraft, true},
		{StatusLive, StatusClosed, true},
		{StatusClosed, StatusDraft, false},
		{StatusClosed, StatusLive, false},
		{StatusDraft, StatusDraft, false},
		{StatusLive, StatusLive, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestFormTransition(t *testing.T) {
	owner := Actor{ID: uuid.New(), Role: RoleOrganization}
	stranger := Actor{ID: uuid.New(), Role: RoleUser}

	f := &Form{ID: uuid.New(), OwnerID: owner.ID, Status: StatusDraft}

	assert.ErrorIs(t, f.Transition(stranger, StatusLive), ErrUnauthorized)
	assert.Equal(t, StatusDraft, f.Status)

	assert.NoError(t, f.Transition(owner, StatusLive))
	assert.Equal(t, StatusLive, f.Status)

	assert.NoError(t, f.Transition(owner, StatusClosed))
	assert.Equal(t, StatusClosed, f.Status)

	// closed is terminal
	assert.ErrorIs(t, f.Transition(owner, StatusLive), ErrInvalidTransition)
	assert.ErrorIs(t, f.Transition(owner, StatusDraft), ErrInvalidTransition)
	assert.Equal(t, StatusClosed, f.Status)
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("LIVE")
	assert.True(t, ok)
	assert.Equal(t, StatusLive, st)

	_, ok = ParseStatus("live")
	assert.False(t, ok)

	_, ok = ParseStatus("ARCHIVED")
	assert.False(t, ok)
}
