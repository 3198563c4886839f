package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/introbot/chatbot-server/internal/model"
	"github.com/introbot/chatbot-server/internal/testutil"
)

type fakeUserStore struct {
	created []model.User
	id      string
	users   []model.User
	err     error
}

func (f *fakeUserStore) Create(_ context.Context, user model.User) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, user)
	return f.id, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func TestUser_Create_ForcesRoleAndCreatedAt(t *testing.T) {
	store := &fakeUserStore{id: "507f1f77bcf86cd799439011"}
	s := NewUser(store, testutil.MakeNoopLogger())

	before := time.Now().UTC()
	id, err := s.Create(context.Background(), model.NewUser{
		Username: "alice",
		FullName: "Alice Wonderland",
		Email:    "alice@example.com",
	})
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", id)

	require.Len(t, store.created, 1)
	saved := store.created[0]
	assert.Equal(t, "alice", saved.Username)
	assert.Equal(t, "Alice Wonderland", saved.FullName)
	assert.Equal(t, "alice@example.com", saved.Email)
	assert.Equal(t, model.RoleUser, saved.Role)
	assert.False(t, saved.CreatedAt.Before(before))
	assert.False(t, saved.CreatedAt.After(after))
}

func TestUser_Create_NoServerSideValidation(t *testing.T) {
	// Field validation lives in the wizard; the service stores whatever
	// it is handed.
	store := &fakeUserStore{id: "id"}
	s := NewUser(store, testutil.MakeNoopLogger())

	_, err := s.Create(context.Background(), model.NewUser{Username: "x", Email: "not-an-email"})
	require.NoError(t, err)
	require.Len(t, store.created, 1)
}

func TestUser_Create_StoreFailure(t *testing.T) {
	store := &fakeUserStore{err: errors.New("insert failed")}
	s := NewUser(store, testutil.MakeNoopLogger())

	_, err := s.Create(context.Background(), model.NewUser{Username: "alice"})
	require.Error(t, err)
}

func TestUser_List(t *testing.T) {
	store := &fakeUserStore{users: []model.User{
		{Username: "alice", Role: model.RoleUser},
		{Username: "bob", Role: model.RoleUser},
	}}
	s := NewUser(store, testutil.MakeNoopLogger())

	users, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
}

func TestUser_List_StoreFailure(t *testing.T) {
	store := &fakeUserStore{err: errors.New("find failed")}
	s := NewUser(store, testutil.MakeNoopLogger())

	_, err := s.List(context.Background())
	require.Error(t, err)
}
