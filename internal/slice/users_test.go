package slice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminconsole/internal/domain/entity"
	apperrors "adminconsole/pkg/errors"
)

func TestUserLifecycle(t *testing.T) {
	h := signedIn(t)
	users := h.store.Users
	ctx := context.Background()

	require.NoError(t, users.FetchUsers(ctx))
	assert.Equal(t, 2, users.State().Total)

	created, err := users.CreateUser(ctx, entity.UserInput{
		Username: "  bob ",
		Email:    "bob@example.com ",
		Role:     entity.RoleUser,
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", created.Username)
	assert.Equal(t, 3, users.State().Total)
	assert.Contains(t, h.messages(NotifySuccess), "User added successfully!")

	_, err = users.UpdateUser(ctx, created.ID, entity.UserInput{Username: "bobby", Email: "bob@example.com", Role: entity.RoleCustomer})
	require.NoError(t, err)
	state := users.State()
	assert.Equal(t, "bobby", state.Items[2].Username)
	assert.Equal(t, entity.RoleCustomer, state.Items[2].Role)

	fetched, err := users.FetchUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, fetched, users.State().Current)

	require.NoError(t, users.DeleteUser(ctx, created.ID))
	state = users.State()
	assert.Equal(t, 2, state.Total)
	assert.Nil(t, state.Current)
}

func TestCreateUserValidation(t *testing.T) {
	h := signedIn(t)

	_, err := h.store.Users.CreateUser(context.Background(), entity.UserInput{Username: "bo", Email: "bo@example.com", Role: entity.RoleUser})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
	assert.Equal(t, "username must be at least 3 characters", h.store.Users.State().Task.Error())
}

func TestUserFilters(t *testing.T) {
	h := signedIn(t)
	users := h.store.Users

	assert.Equal(t, entity.UserFilters{Role: "all", Status: "all"}, users.State().Filters)

	users.SetFilters(entity.UserFilters{Search: "jane", Role: "customer", Status: "all"})
	assert.Equal(t, "jane", users.State().Filters.Search)

	users.Reset()
	assert.Equal(t, entity.UserFilters{Role: "all", Status: "all"}, users.State().Filters)
}
