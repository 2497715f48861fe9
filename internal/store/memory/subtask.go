package memory

import (
	"context"
	"sort"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type subtaskStore struct {
	db *DB
}

func (s *subtaskStore) GetByID(ctx context.Context, id int64) (*model.Subtask, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	st, ok := s.db.subtasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	c := *st
	return &c, nil
}

func (s *subtaskStore) Create(ctx context.Context, st *model.Subtask) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.nextSubtaskID++
	st.ID = s.db.nextSubtaskID
	c := *st
	s.db.subtasks[st.ID] = &c
	return nil
}

func (s *subtaskStore) Update(ctx context.Context, id int64, upd model.SubtaskUpdate) (*model.Subtask, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	st, ok := s.db.subtasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Title != nil {
		st.Title = *upd.Title
	}
	if upd.Completed != nil {
		st.Completed = *upd.Completed
	}
	c := *st
	return &c, nil
}

func (s *subtaskStore) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.subtasks[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.subtasks, id)
	return nil
}

func (s *subtaskStore) ListByTask(ctx context.Context, taskID int64) ([]model.Subtask, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	result := make([]model.Subtask, 0)
	for _, st := range s.db.subtasks {
		if st.TaskID == taskID {
			result = append(result, *st)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
