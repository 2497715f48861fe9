package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"taskflow.app/server/internal/http/handler"
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
	"taskflow.app/server/internal/store"
)

var _ = Describe("TaskHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTaskService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockTaskService{}
		h := handler.NewTaskHandler(svc)
		router.POST("/tasks", h.Create)
		router.GET("/tasks/:id", h.GetByID)
		router.PATCH("/tasks/:id", h.Update)
		router.PATCH("/tasks/:id/status", h.UpdateStatus)
		router.DELETE("/tasks/:id", h.Delete)
		router.POST("/epics/:id/documentation", h.GenerateEpicDocumentation)
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Create", func() {
		It("returns 201 with the created task", func() {
			svc.createFn = func(_ context.Context, params service.CreateTaskParams) (*model.Task, error) {
				return &model.Task{ID: 1, Title: params.Title, Status: model.TaskStatusTodo, Priority: model.TaskPriorityMedium, TaskType: model.TaskTypeAdhoc, WorkspaceID: params.WorkspaceID}, nil
			}

			w := do(http.MethodPost, "/tasks", map[string]any{
				"title":        "write docs",
				"workspace_id": 1,
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			var resp model.Task
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ID).To(Equal(int64(1)))
			Expect(resp.Status).To(Equal(model.TaskStatusTodo))
		})

		It("returns 400 when the binding rejects an enum value", func() {
			w := do(http.MethodPost, "/tasks", map[string]any{
				"title":        "bad status",
				"workspace_id": 1,
				"status":       "paused",
			})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 400 when the title is missing", func() {
			w := do(http.MethodPost, "/tasks", map[string]any{"workspace_id": 1})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps a service validation error to 400", func() {
			svc.createFn = func(_ context.Context, _ service.CreateTaskParams) (*model.Task, error) {
				return nil, &service.ValidationError{Field: "workspace_id", Reason: "is required"}
			}

			w := do(http.MethodPost, "/tasks", map[string]any{
				"title":        "no home",
				"workspace_id": 5,
			})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps unexpected errors to 500", func() {
			svc.createFn = func(_ context.Context, _ service.CreateTaskParams) (*model.Task, error) {
				return nil, errors.New("boom")
			}

			w := do(http.MethodPost, "/tasks", map[string]any{
				"title":        "boom",
				"workspace_id": 1,
			})
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("GetByID", func() {
		It("returns 404 for a missing task", func() {
			svc.getFn = func(_ context.Context, _ int64) (*model.Task, error) {
				return nil, store.ErrNotFound
			}

			w := do(http.MethodGet, "/tasks/42", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a non-numeric id", func() {
			w := do(http.MethodGet, "/tasks/abc", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("UpdateStatus", func() {
		It("passes the parsed status through", func() {
			var got model.TaskStatus
			svc.updateStatusFn = func(_ context.Context, id int64, status model.TaskStatus) (*model.Task, error) {
				got = status
				return &model.Task{ID: id, Status: status}, nil
			}

			w := do(http.MethodPatch, "/tasks/3/status", map[string]string{"status": "in_review"})
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got).To(Equal(model.TaskStatusInReview))
		})

		It("rejects an unknown status at the binding", func() {
			w := do(http.MethodPatch, "/tasks/3/status", map[string]string{"status": "archived"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Delete", func() {
		It("confirms deletion", func() {
			svc.deleteFn = func(_ context.Context, _ int64) error { return nil }

			w := do(http.MethodDelete, "/tasks/5", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"deleted":true`))
		})

		It("returns 404 when the task is already gone", func() {
			svc.deleteFn = func(_ context.Context, _ int64) error { return store.ErrNotFound }

			w := do(http.MethodDelete, "/tasks/5", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GenerateEpicDocumentation", func() {
		It("returns the rendered document", func() {
			svc.generateEpicDocFn = func(_ context.Context, epicID int64) (string, error) {
				return "# Epic: launch", nil
			}

			w := do(http.MethodPost, "/epics/9/documentation", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["documentation"]).To(ContainSubstring("# Epic: launch"))
		})

		It("maps a non-epic target to 400", func() {
			svc.generateEpicDocFn = func(_ context.Context, _ int64) (string, error) {
				return "", &service.ValidationError{Field: "task_type", Reason: "task is not an epic"}
			}

			w := do(http.MethodPost, "/epics/9/documentation", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
