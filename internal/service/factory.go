package service

import (
	"taskflow.app/server/internal/queue"
	"taskflow.app/server/internal/store"
)

type Services struct {
	stores   store.Provider
	producer queue.Producer
}

type ServicesConfig struct {
	Stores   store.Provider
	Producer queue.Producer // optional notification stream mirror
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		stores:   cfg.Stores,
		producer: cfg.Producer,
	}
}

func (s *Services) Notifier() Notifier {
	return NewNotifier(s.stores.Users(), s.stores.Notifications(), s.producer)
}

func (s *Services) Tasks() TaskService {
	return NewTaskService(s.stores.Tasks(), s.Notifier())
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores.Workspaces())
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users())
}

func (s *Services) Subtasks() SubtaskService {
	return NewSubtaskService(s.stores.Subtasks(), s.stores.Tasks())
}

func (s *Services) Comments() CommentService {
	return NewCommentService(s.stores.Comments(), s.stores.Tasks())
}

func (s *Services) Notifications() NotificationService {
	return NewNotificationService(s.stores.Notifications())
}
