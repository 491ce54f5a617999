package simple

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatchkit/core/handler"
	"github.com/dmitrymomot/dispatchkit/core/model"
	"github.com/dmitrymomot/dispatchkit/core/response"
	"github.com/dmitrymomot/dispatchkit/pkg/async"
)

type createTaskRequest struct {
	Title string `json:"title"`
}

type taskExport struct {
	GeneratedAt time.Time `json:"generated_at"`
	Tasks       []Task    `json:"tasks"`
}

type taskStats struct {
	Total int `json:"total"`
	Done  int `json:"done"`
	Open  int `json:"open"`
}

type taskHandler struct {
	store *TaskStore
}

func newTaskHandler(store *TaskStore) *taskHandler {
	return &taskHandler{store: store}
}

func (h *taskHandler) Create(ctx handler.Context, in createTaskRequest) (*Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, response.ErrBadRequest.WithMessage("title is required")
	}
	task := h.store.Insert(title)
	return &task, nil
}

func (h *taskHandler) List(ctx handler.Context, limit, offset int) ([]Task, error) {
	return h.store.List(limit, offset), nil
}

// Get returns nil for unknown IDs; the pipeline renders that as 404.
func (h *taskHandler) Get(ctx handler.Context, id uuid.UUID) (*Task, error) {
	task, ok := h.store.Get(id)
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (h *taskHandler) Complete(ctx handler.Context, id uuid.UUID, done bool) (*Task, error) {
	task, ok := h.store.SetDone(id, done)
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (h *taskHandler) Delete(ctx handler.Context, id uuid.UUID) error {
	if !h.store.Delete(id) {
		return response.ErrNotFound.WithMessage("task not found")
	}
	return nil
}

// Export builds the snapshot in the background; the pipeline awaits the
// future before rendering.
func (h *taskHandler) Export(ctx handler.Context) *async.Future[taskExport] {
	return async.Async(ctx, h.store, func(ctx context.Context, store *TaskStore) (taskExport, error) {
		return taskExport{
			GeneratedAt: time.Now().UTC(),
			Tasks:       store.List(0, 0),
		}, nil
	})
}

func healthCheck(ctx handler.Context, requestID string) handler.Response {
	resp := response.JSON(map[string]string{"status": "ok"})
	if requestID != "" {
		resp = response.WithHeaders(resp, map[string]string{"X-Request-ID": requestID})
	}
	return resp
}

func prefs(ctx handler.Context, theme string) handler.Response {
	if theme == "" {
		theme = "light"
	}
	return response.WithCookie(
		response.JSON(map[string]string{"theme": theme}),
		&http.Cookie{Name: "theme", Value: theme, Path: "/", HttpOnly: true},
	)
}

func stats(ctx handler.Context, store *TaskStore) (taskStats, error) {
	total, done := store.Count()
	return taskStats{Total: total, Done: done, Open: total - done}, nil
}

// Models enumerates the demo handler models for compilation.
type Models struct{}

func (Models) Models() []model.Handler {
	return []model.Handler{
		{
			Type:        reflect.TypeFor[*taskHandler](),
			Constructor: newTaskHandler,
			Methods: []model.Method{
				{
					Name:  "Create",
					Func:  (*taskHandler).Create,
					Route: "POST /tasks",
					Params: []model.Param{
						{Name: "ctx"},
						{Name: "in", Source: model.SourceBody},
					},
				},
				{
					Name:  "List",
					Func:  (*taskHandler).List,
					Route: "GET /tasks",
					Params: []model.Param{
						{Name: "ctx"},
						{Name: "limit", Source: model.SourceQuery},
						{Name: "offset", Source: model.SourceQuery},
					},
				},
				{
					Name:  "Get",
					Func:  (*taskHandler).Get,
					Route: "GET /tasks/{id}",
					Params: []model.Param{
						{Name: "ctx"},
						{Name: "id", Source: model.SourceRoute},
					},
				},
				{
					Name:  "Complete",
					Func:  (*taskHandler).Complete,
					Route: "POST /tasks/{id}/complete",
					Params: []model.Param{
						{Name: "ctx"},
						{Name: "id", Source: model.SourceRoute},
						{Name: "done", Source: model.SourceForm},
					},
				},
				{
					Name:  "Delete",
					Func:  (*taskHandler).Delete,
					Route: "DELETE /tasks/{id}",
					Params: []model.Param{
						{Name: "ctx"},
						{Name: "id", Source: model.SourceRoute},
					},
				},
				{
					Name:  "Export",
					Func:  (*taskHandler).Export,
					Route: "GET /tasks/export",
					Params: []model.Param{
						{Name: "ctx"},
					},
				},
			},
		},
		{
			Methods: []model.Method{
				{
					Name:   "Health",
					Func:   healthCheck,
					Static: true,
					Route:  "GET /healthz",
					Params: []model.Param{
						{Name: "ctx"},
						{Name: "requestID", Source: model.SourceHeader, Key: "X-Request-ID"},
					},
				},
				{
					Name:   "Prefs",
					Func:   prefs,
					Static: true,
					Route:  "GET /prefs",
					Params: []model.Param{
						{Name: "ctx"},
						{Name: "theme", Source: model.SourceCookie},
					},
				},
				{
					Name:   "Stats",
					Func:   stats,
					Static: true,
					Route:  "GET /stats",
					Params: []model.Param{
						{Name: "ctx"},
						{Name: "store", Source: model.SourceService},
					},
				},
			},
		},
	}
}
