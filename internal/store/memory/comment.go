package memory

import (
	"context"
	"sort"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type commentStore struct {
	db *DB
}

func (s *commentStore) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	c, ok := s.db.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (s *commentStore) Create(ctx context.Context, c *model.Comment) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.nextCommentID++
	c.ID = s.db.nextCommentID
	c.CreatedAt = s.db.now()
	stored := *c
	s.db.comments[c.ID] = &stored
	return nil
}

func (s *commentStore) ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	result := make([]model.Comment, 0)
	for _, c := range s.db.comments {
		if c.TaskID == taskID {
			result = append(result, *c)
		}
	}
	// Oldest first for display; ties fall back to id order.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
