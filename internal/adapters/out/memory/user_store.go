package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"ordering/internal/adapters/out/identity"
	"ordering/internal/pkg/errs"
)

// UserStore keeps identity users in a map keyed by id.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]identity.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]identity.User)}
}

var _ identity.UserStore = (*UserStore)(nil)

func (s *UserStore) FindByID(_ context.Context, id string) (identity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return identity.User{}, errs.NewObjectNotFoundError("userId", id)
	}
	return cloneUser(u), nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (identity.User, error) {
	return s.find("username", username, func(u identity.User) string { return u.Username })
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (identity.User, error) {
	return s.find("email", email, func(u identity.User) string { return u.Email })
}

func (s *UserStore) Create(_ context.Context, user identity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return errs.NewPersistenceFailureError("create user", errors.New("duplicate user id"))
	}
	for _, other := range s.users {
		if identity.Normalize(other.Username) == identity.Normalize(user.Username) ||
			identity.Normalize(other.Email) == identity.Normalize(user.Email) {
			return errs.NewPersistenceFailureError("create user", errors.New("user name or email is taken"))
		}
	}

	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *UserStore) find(param, value string, key func(identity.User) string) (identity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := identity.Normalize(value)
	for _, u := range s.users {
		if identity.Normalize(key(u)) == want {
			return cloneUser(u), nil
		}
	}
	return identity.User{}, errs.NewObjectNotFoundError(param, value)
}

func cloneUser(u identity.User) identity.User {
	u.Roles = slices.Clone(u.Roles)
	return u
}
