package forms

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sarthakcode01/hacksetu-be/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	store, db := newTestStore(t)
	actor := newTestUser(t, db, model.RoleOrganization)

	u, err := store.GetProfile(context.Background(), actor.ID)
	require.NoError(t, err)
	assert.Equal(t, actor.ID, u.ID)
	assert.Equal(t, model.RoleOrganization, u.Role)
	assert.Equal(t, "Acme Corp", u.OrgName)

	_, err = store.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	store, db := newTestStore(t)
	actor := newTestUser(t, db, model.RoleUser)

	_, err := store.UpdateProfile(context.Background(), actor.ID, "J")
	_, isValidation := model.ValidationErrors(err)
	assert.True(t, isValidation)

	u, err := store.UpdateProfile(context.Background(), actor.ID, "Jamie Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jamie Doe", u.FullName)

	// email and role stay put
	assert.Equal(t, model.RoleUser, u.Role)

	_, err = store.UpdateProfile(context.Background(), uuid.New(), "Nobody Here")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
