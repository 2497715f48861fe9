package memory

import (
	"context"
	"sort"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type taskStore struct {
	db *DB
}

func (s *taskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	t, ok := s.db.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneTask(t), nil
}

func (s *taskStore) GetBySlackMessageID(ctx context.Context, slackMessageID string) (*model.Task, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, t := range s.db.tasks {
		if t.SlackMessageID != nil && *t.SlackMessageID == slackMessageID {
			return cloneTask(t), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *taskStore) GetByEmailThreadID(ctx context.Context, threadID string) (*model.Task, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, t := range s.db.tasks {
		if t.EmailThreadID != nil && *t.EmailThreadID == threadID {
			return cloneTask(t), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.nextTaskID++
	task.ID = s.db.nextTaskID
	task.CreatedAt = s.db.now()
	task.UpdatedAt = task.CreatedAt
	s.db.tasks[task.ID] = cloneTask(task)
	return nil
}

func (s *taskStore) Update(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	t, ok := s.db.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = cp(upd.Description)
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.AssigneeID != nil {
		t.AssigneeID = cp(upd.AssigneeID)
	}
	if upd.DueDate != nil {
		t.DueDate = cp(upd.DueDate)
	}
	if upd.StartDate != nil {
		t.StartDate = cp(upd.StartDate)
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	if upd.Position != nil {
		t.Position = *upd.Position
	}
	if upd.TaskType != nil {
		t.TaskType = *upd.TaskType
	}
	if upd.ParentTaskID != nil {
		t.ParentTaskID = cp(upd.ParentTaskID)
	}
	if upd.EmailThreadID != nil {
		t.EmailThreadID = cp(upd.EmailThreadID)
	}
	if upd.Source != nil {
		t.Source = cp(upd.Source)
	}
	if upd.SlackMessageID != nil {
		t.SlackMessageID = cp(upd.SlackMessageID)
	}
	t.UpdatedAt = s.db.now()

	return cloneTask(t), nil
}

// Delete cascades to subtasks and comments before removing the task. All of
// it happens under the one write lock, so no reader observes a partial
// cascade.
func (s *taskStore) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.tasks[id]; !ok {
		return store.ErrNotFound
	}

	for stID, st := range s.db.subtasks {
		if st.TaskID == id {
			delete(s.db.subtasks, stID)
		}
	}
	for cID, c := range s.db.comments {
		if c.TaskID == id {
			delete(s.db.comments, cID)
		}
	}
	delete(s.db.tasks, id)
	return nil
}

func (s *taskStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error) {
	return s.list(func(t *model.Task) bool { return t.WorkspaceID == workspaceID }), nil
}

func (s *taskStore) ListByWorkspaceAndStatus(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]model.Task, error) {
	return s.list(func(t *model.Task) bool {
		return t.WorkspaceID == workspaceID && t.Status == status
	}), nil
}

func (s *taskStore) ListByWorkspaceAndType(ctx context.Context, workspaceID int64, taskType model.TaskType) ([]model.Task, error) {
	return s.list(func(t *model.Task) bool {
		return t.WorkspaceID == workspaceID && t.TaskType == taskType
	}), nil
}

func (s *taskStore) ListByParent(ctx context.Context, parentTaskID int64) ([]model.Task, error) {
	return s.list(func(t *model.Task) bool {
		return t.ParentTaskID != nil && *t.ParentTaskID == parentTaskID
	}), nil
}

// ListByEpic shares the parent linkage: an epic's members are the tasks whose
// parent reference names it.
func (s *taskStore) ListByEpic(ctx context.Context, epicID int64) ([]model.Task, error) {
	return s.ListByParent(ctx, epicID)
}

func (s *taskStore) list(keep func(*model.Task) bool) []model.Task {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	result := make([]model.Task, 0)
	for _, t := range s.db.tasks {
		if keep(t) {
			result = append(result, *cloneTask(t))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func cloneTask(t *model.Task) *model.Task {
	c := *t
	c.Description = cp(t.Description)
	c.AssigneeID = cp(t.AssigneeID)
	c.DueDate = cp(t.DueDate)
	c.StartDate = cp(t.StartDate)
	c.ParentTaskID = cp(t.ParentTaskID)
	c.EmailThreadID = cp(t.EmailThreadID)
	c.Source = cp(t.Source)
	c.SlackMessageID = cp(t.SlackMessageID)
	return &c
}
