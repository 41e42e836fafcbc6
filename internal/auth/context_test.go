package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
)

type fakeProfiles struct {
	user *domain.User
	err  error
}

func (f *fakeProfiles) Profile(ctx context.Context) (*domain.User, error) {
	return f.user, f.err
}

func newTestStore(t *testing.T) *TokenStore {
	t.Helper()
	store, err := NewTokenStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	return store
}

func TestResolveWithoutToken(t *testing.T) {
	store := newTestStore(t)
	uc := NewContext(store, &fakeProfiles{})

	assert.Equal(t, StateUnresolved, uc.State())
	require.NoError(t, uc.Resolve(context.Background()))
	assert.Equal(t, StateAnonymous, uc.State())
	assert.Nil(t, uc.User())
}

func TestResolveAuthenticates(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("tok123"))

	uc := NewContext(store, &fakeProfiles{user: &domain.User{Name: "Dana", Email: "d@e.com"}})
	require.NoError(t, uc.Resolve(context.Background()))

	assert.Equal(t, StateAuthenticated, uc.State())
	user := uc.User()
	require.NotNil(t, user)
	assert.Equal(t, "Dana", user.Name)
	assert.Equal(t, "tok123", user.Token, "resolved user keeps the stored token")
}

func TestResolveFailureEvictsStaleToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("stale"))

	uc := NewContext(store, &fakeProfiles{err: errors.New("401")})
	err := uc.Resolve(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StateAnonymous, uc.State())
	assert.Empty(t, store.Token())
}

func TestUpdateUserPersistsCarriedToken(t *testing.T) {
	store := newTestStore(t)
	uc := NewContext(store, &fakeProfiles{})

	require.NoError(t, uc.UpdateUser(&domain.User{Name: "Dana", Token: "fresh"}))
	assert.Equal(t, StateAuthenticated, uc.State())
	assert.Equal(t, "fresh", store.Token())
}

func TestUpdateUserRetainsPreviousToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("kept"))
	uc := NewContext(store, &fakeProfiles{})

	require.NoError(t, uc.UpdateUser(&domain.User{Name: "Dana"}))
	assert.Equal(t, "kept", store.Token())
	user := uc.User()
	require.NotNil(t, user)
	assert.Equal(t, "kept", user.Token)
}

func TestUpdateUserNilClears(t *testing.T) {
	store := newTestStore(t)
	uc := NewContext(store, &fakeProfiles{})
	require.NoError(t, uc.UpdateUser(&domain.User{Name: "Dana", Token: "tok"}))

	require.NoError(t, uc.UpdateUser(nil))
	assert.Equal(t, StateAnonymous, uc.State())
	assert.Empty(t, store.Token())
}

func TestClearLogsOut(t *testing.T) {
	store := newTestStore(t)
	uc := NewContext(store, &fakeProfiles{})
	require.NoError(t, uc.UpdateUser(&domain.User{Name: "Dana", Token: "tok"}))

	require.NoError(t, uc.Clear())
	assert.Equal(t, StateAnonymous, uc.State())
	assert.Nil(t, uc.User())
	assert.Empty(t, store.Token())
}

func TestUserReturnsCopy(t *testing.T) {
	store := newTestStore(t)
	uc := NewContext(store, &fakeProfiles{})
	require.NoError(t, uc.UpdateUser(&domain.User{Name: "Dana", Token: "tok"}))

	u := uc.User()
	u.Name = "mutated"
	assert.Equal(t, "Dana", uc.User().Name)
}
