package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/introbot/chatbot-server/internal/model"
	"github.com/introbot/chatbot-server/internal/testutil"
)

type fakeUserService struct {
	created []model.NewUser
	id      string
	users   []model.User
	err     error
}

func (f *fakeUserService) Create(_ context.Context, input model.NewUser) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, input)
	return f.id, nil
}

func (f *fakeUserService) List(_ context.Context) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func TestUser_Create(t *testing.T) {
	svc := &fakeUserService{id: "507f1f77bcf86cd799439011"}
	h := NewUser(svc, testutil.MakeNoopLogger())

	body := `{"username":"alice","fullName":"Alice Wonderland","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"User created successfully","userId":"507f1f77bcf86cd799439011"}`, rec.Body.String())

	require.Len(t, svc.created, 1)
	assert.Equal(t, model.NewUser{
		Username: "alice",
		FullName: "Alice Wonderland",
		Email:    "alice@example.com",
	}, svc.created[0])
}

func TestUser_Create_IgnoresClientRole(t *testing.T) {
	svc := &fakeUserService{id: "id"}
	h := NewUser(svc, testutil.MakeNoopLogger())

	body := `{"username":"alice","fullName":"Alice Wonderland","email":"alice@example.com","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The decoded input has no role field at all; the service forces it.
	require.Len(t, svc.created, 1)
}

func TestUser_Create_PersistenceFailure(t *testing.T) {
	svc := &fakeUserService{err: errors.New("insert failed")}
	h := NewUser(svc, testutil.MakeNoopLogger())

	body := `{"username":"alice","fullName":"Alice Wonderland","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestUser_List(t *testing.T) {
	svc := &fakeUserService{users: []model.User{
		{Username: "alice", FullName: "Alice Wonderland", Email: "alice@example.com", Role: model.RoleUser},
	}}
	h := NewUser(svc, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"role":"user"`)
}

func TestUser_List_Empty(t *testing.T) {
	h := NewUser(&fakeUserService{}, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"users":[]}`, rec.Body.String())
}

func TestUser_List_PersistenceFailure(t *testing.T) {
	h := NewUser(&fakeUserService{err: errors.New("find failed")}, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
