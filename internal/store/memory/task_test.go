package memory_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
	"taskflow.app/server/internal/store/memory"
)

var _ = Describe("TaskStore", func() {
	var (
		ctx    context.Context
		stores *memory.Stores
		tasks  store.TaskStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = memory.NewStores(memory.NewDB())
		tasks = stores.Tasks()
	})

	newTask := func(title string, workspaceID int64) *model.Task {
		t := &model.Task{
			Title:       title,
			Status:      model.TaskStatusTodo,
			Priority:    model.TaskPriorityMedium,
			TaskType:    model.TaskTypeAdhoc,
			WorkspaceID: workspaceID,
		}
		Expect(tasks.Create(ctx, t)).To(Succeed())
		return t
	}

	Describe("Create", func() {
		It("assigns strictly increasing ids starting at 1", func() {
			first := newTask("first", 1)
			second := newTask("second", 1)

			Expect(first.ID).To(Equal(int64(1)))
			Expect(second.ID).To(Equal(int64(2)))
		})

		It("does not reuse ids after deletion", func() {
			first := newTask("first", 1)
			Expect(tasks.Delete(ctx, first.ID)).To(Succeed())

			second := newTask("second", 1)
			Expect(second.ID).To(Equal(int64(2)))
		})

		It("sets created and updated timestamps", func() {
			t := newTask("stamped", 1)
			Expect(t.CreatedAt).NotTo(BeZero())
			Expect(t.UpdatedAt).To(Equal(t.CreatedAt))
		})
	})

	Describe("GetByID", func() {
		It("returns ErrNotFound for an unknown id", func() {
			_, err := tasks.GetByID(ctx, 42)
			Expect(err).To(MatchError(store.ErrNotFound))
		})

		It("returns a copy that does not alias the stored task", func() {
			created := newTask("aliasing", 1)

			got, err := tasks.GetByID(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())

			got.Title = "mutated"
			desc := "scribbled"
			got.Description = &desc

			fresh, err := tasks.GetByID(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh.Title).To(Equal("aliasing"))
			Expect(fresh.Description).To(BeNil())
		})
	})

	Describe("Update", func() {
		It("merges only the provided fields", func() {
			t := newTask("partial", 1)
			desc := "details"
			_, err := tasks.Update(ctx, t.ID, model.TaskUpdate{Description: &desc})
			Expect(err).NotTo(HaveOccurred())

			prio := model.TaskPriorityHigh
			updated, err := tasks.Update(ctx, t.ID, model.TaskUpdate{Priority: &prio})
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.Title).To(Equal("partial"))
			Expect(updated.Description).To(HaveValue(Equal("details")))
			Expect(updated.Priority).To(Equal(model.TaskPriorityHigh))
		})

		It("is idempotent for a repeated identical update", func() {
			t := newTask("repeat", 1)
			status := model.TaskStatusInProgress

			first, err := tasks.Update(ctx, t.ID, model.TaskUpdate{Status: &status})
			Expect(err).NotTo(HaveOccurred())
			second, err := tasks.Update(ctx, t.ID, model.TaskUpdate{Status: &status})
			Expect(err).NotTo(HaveOccurred())

			second.UpdatedAt = first.UpdatedAt
			Expect(second).To(Equal(first))
		})

		It("returns ErrNotFound for an unknown id", func() {
			title := "nope"
			_, err := tasks.Update(ctx, 99, model.TaskUpdate{Title: &title})
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("removes the task's subtasks and comments with it", func() {
			t := newTask("doomed", 1)
			keeper := newTask("keeper", 1)

			subtasks := stores.Subtasks()
			comments := stores.Comments()

			Expect(subtasks.Create(ctx, &model.Subtask{TaskID: t.ID, Title: "a"})).To(Succeed())
			Expect(subtasks.Create(ctx, &model.Subtask{TaskID: keeper.ID, Title: "b"})).To(Succeed())
			Expect(comments.Create(ctx, &model.Comment{TaskID: t.ID, UserID: 1, Content: "hi"})).To(Succeed())

			Expect(tasks.Delete(ctx, t.ID)).To(Succeed())

			_, err := tasks.GetByID(ctx, t.ID)
			Expect(err).To(MatchError(store.ErrNotFound))

			orphaned, err := subtasks.ListByTask(ctx, t.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(orphaned).To(BeEmpty())

			kept, err := subtasks.ListByTask(ctx, keeper.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(kept).To(HaveLen(1))

			gone, err := comments.ListByTask(ctx, t.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(gone).To(BeEmpty())
		})

		It("returns ErrNotFound for an unknown id", func() {
			Expect(tasks.Delete(ctx, 7)).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("listing", func() {
		It("filters by workspace, status and type in id order", func() {
			a := newTask("a", 1)
			b := newTask("b", 1)
			newTask("other", 2)

			status := model.TaskStatusCompleted
			_, err := tasks.Update(ctx, b.ID, model.TaskUpdate{Status: &status})
			Expect(err).NotTo(HaveOccurred())

			all, err := tasks.ListByWorkspace(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].ID).To(Equal(a.ID))
			Expect(all[1].ID).To(Equal(b.ID))

			completed, err := tasks.ListByWorkspaceAndStatus(ctx, 1, model.TaskStatusCompleted)
			Expect(err).NotTo(HaveOccurred())
			Expect(completed).To(HaveLen(1))
			Expect(completed[0].ID).To(Equal(b.ID))

			adhoc, err := tasks.ListByWorkspaceAndType(ctx, 1, model.TaskTypeAdhoc)
			Expect(err).NotTo(HaveOccurred())
			Expect(adhoc).To(HaveLen(2))
		})

		It("lists children via the parent reference", func() {
			parent := newTask("parent", 1)
			child := &model.Task{
				Title:        "child",
				Status:       model.TaskStatusTodo,
				Priority:     model.TaskPriorityMedium,
				TaskType:     model.TaskTypeAdhoc,
				WorkspaceID:  1,
				ParentTaskID: &parent.ID,
			}
			Expect(tasks.Create(ctx, child)).To(Succeed())

			children, err := tasks.ListByParent(ctx, parent.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(children).To(HaveLen(1))
			Expect(children[0].ID).To(Equal(child.ID))

			members, err := tasks.ListByEpic(ctx, parent.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(Equal(children))
		})

		It("keeps a dangling parent reference listable after the parent is gone", func() {
			parent := newTask("parent", 1)
			child := &model.Task{
				Title:        "orphan",
				Status:       model.TaskStatusTodo,
				Priority:     model.TaskPriorityMedium,
				TaskType:     model.TaskTypeAdhoc,
				WorkspaceID:  1,
				ParentTaskID: &parent.ID,
			}
			Expect(tasks.Create(ctx, child)).To(Succeed())
			Expect(tasks.Delete(ctx, parent.ID)).To(Succeed())

			got, err := tasks.GetByID(ctx, child.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ParentTaskID).To(HaveValue(Equal(parent.ID)))
		})
	})

	Describe("external-source lookups", func() {
		It("finds tasks by slack message id and email thread id", func() {
			ts := "1725100000.000100"
			thread := "<msg-1@example.com>"
			t := &model.Task{
				Title:          "external",
				Status:         model.TaskStatusTodo,
				Priority:       model.TaskPriorityMedium,
				TaskType:       model.TaskTypeAdhoc,
				WorkspaceID:    1,
				SlackMessageID: &ts,
				EmailThreadID:  &thread,
			}
			Expect(tasks.Create(ctx, t)).To(Succeed())

			bySlack, err := tasks.GetBySlackMessageID(ctx, ts)
			Expect(err).NotTo(HaveOccurred())
			Expect(bySlack.ID).To(Equal(t.ID))

			byThread, err := tasks.GetByEmailThreadID(ctx, thread)
			Expect(err).NotTo(HaveOccurred())
			Expect(byThread.ID).To(Equal(t.ID))

			_, err = tasks.GetBySlackMessageID(ctx, "unknown")
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})
})
