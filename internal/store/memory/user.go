package memory

import (
	"context"
	"sort"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type userStore struct {
	db *DB
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	u, ok := s.db.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, u := range s.db.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.nextUserID++
	user.ID = s.db.nextUserID
	user.CreatedAt = s.db.now()
	s.db.users[user.ID] = cloneUser(user)
	return nil
}

func (s *userStore) List(ctx context.Context) ([]model.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return s.snapshot(func(*model.User) bool { return true }), nil
}

func (s *userStore) ListAdmins(ctx context.Context) ([]model.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return s.snapshot(func(u *model.User) bool { return u.Role == model.RoleAdmin }), nil
}

// snapshot returns copies in insertion order; ids are allocated sequentially
// so id order is insertion order. Callers must hold the lock.
func (s *userStore) snapshot(keep func(*model.User) bool) []model.User {
	result := make([]model.User, 0)
	for _, u := range s.db.users {
		if keep(u) {
			result = append(result, *cloneUser(u))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.AvatarURL = cp(u.AvatarURL)
	c.Email = cp(u.Email)
	return &c
}
