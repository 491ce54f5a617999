package simple_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/app/simple"
	"github.com/dmitrymomot/dispatchkit/core/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	app, err := simple.NewApp(
		simple.WithLogger(logger.New(logger.WithOutput(io.Discard))),
	)
	require.NoError(t, err)

	ts := httptest.NewServer(app.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func createTask(t *testing.T, ts *httptest.Server, title string) simple.Task {
	t.Helper()

	resp, err := http.Post(ts.URL+"/tasks", "application/json",
		strings.NewReader(`{"title":"`+title+`"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[simple.Task](t, resp)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func TestTaskLifecycle(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	client := ts.Client()

	task := createTask(t, ts, "write docs")
	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, "write docs", task.Title)
	assert.False(t, task.Done)

	t.Run("get returns the task", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/tasks/" + task.ID.String())
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decode[simple.Task](t, resp)
		assert.Equal(t, task.ID, got.ID)
		assert.Equal(t, "write docs", got.Title)
	})

	t.Run("complete flips the done flag", func(t *testing.T) {
		resp, err := http.PostForm(ts.URL+"/tasks/"+task.ID.String()+"/complete",
			url.Values{"done": {"true"}})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decode[simple.Task](t, resp)
		assert.True(t, got.Done)
	})

	t.Run("delete removes the task", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/tasks/"+task.ID.String(), nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = client.Do(req.Clone(req.Context()))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "not_found", decode[errorBody](t, resp).Code)
	})
}

func TestTaskList(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	createTask(t, ts, "one")
	createTask(t, ts, "two")
	createTask(t, ts, "three")

	t.Run("returns all tasks", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/tasks")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		tasks := decode[[]simple.Task](t, resp)
		assert.Len(t, tasks, 3)
	})

	t.Run("honors limit and offset", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/tasks?limit=2&offset=1")
		require.NoError(t, err)

		tasks := decode[[]simple.Task](t, resp)
		require.Len(t, tasks, 2)
		assert.Equal(t, "two", tasks[0].Title)
		assert.Equal(t, "three", tasks[1].Title)
	})
}

func TestTaskValidation(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	t.Run("blank title is rejected", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/tasks", "application/json",
			strings.NewReader(`{"title":"   "}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "title is required", decode[errorBody](t, resp).Message)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/tasks", "application/json",
			strings.NewReader(`{"title":`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid task id is rejected", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/tasks/not-a-uuid")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown task id is not found", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/tasks/" + uuid.NewString())
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestTaskExport(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	createTask(t, ts, "alpha")
	createTask(t, ts, "beta")

	resp, err := http.Get(ts.URL + "/tasks/export")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	export := decode[struct {
		GeneratedAt time.Time     `json:"generated_at"`
		Tasks       []simple.Task `json:"tasks"`
	}](t, resp)

	assert.False(t, export.GeneratedAt.IsZero())
	assert.Len(t, export.Tasks, 2)
}

func TestStats(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	first := createTask(t, ts, "first")
	createTask(t, ts, "second")

	resp, err := http.PostForm(ts.URL+"/tasks/"+first.ID.String()+"/complete",
		url.Values{"done": {"true"}})
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decode[struct {
		Total int `json:"total"`
		Done  int `json:"done"`
		Open  int `json:"open"`
	}](t, resp)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Done)
	assert.Equal(t, 1, stats.Open)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	t.Run("echoes the request id header", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
		require.NoError(t, err)
		req.Header.Set("X-Request-ID", "req-42")

		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		assert.Equal(t, "req-42", resp.Header.Get("X-Request-ID"))
		assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, resp))
	})

	t.Run("generates an id when the header is absent", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/healthz")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestPrefs(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	t.Run("reads the theme cookie", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/prefs", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})

		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"theme": "dark"}, decode[map[string]string](t, resp))
	})

	t.Run("defaults and sets the cookie", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/prefs")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"theme": "light"}, decode[map[string]string](t, resp))

		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "theme", cookies[0].Name)
		assert.Equal(t, "light", cookies[0].Value)
	})
}
