package view_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "todo-list.com/todo-list/internal/http"
	model "todo-list.com/todo-list/internal/models"
	repository "todo-list.com/todo-list/internal/repositories"
	"todo-list.com/todo-list/internal/services"
	"todo-list.com/todo-list/internal/testutil"
	"todo-list.com/todo-list/internal/view"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := repository.NewTodoRepository(testutil.NewTestDB(t))
	e := echo.New()
	httpapi.Register(e, httpapi.NewTodoHandler(services.NewTodoService(repo)), nil)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_AgainstServer(t *testing.T) {
	srv := newTestServer(t)
	client := view.NewClient(srv.URL+"/", srv.Client())
	ctx := context.Background()

	todos, err := client.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	created, err := client.Create(ctx, "  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)

	updated, err := client.SetCompleted(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy milk", updated.Title)

	require.NoError(t, client.Delete(ctx, created.ID))

	err = client.Delete(ctx, created.ID)
	var statusErr *view.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Todo not found", statusErr.Message)

	_, err = client.Create(ctx, "   ")
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Title is required", statusErr.Message)
}

func TestListView_EndToEnd(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	v := view.NewListView(view.NewClient(srv.URL, srv.Client()))
	require.NoError(t, v.Mount(ctx))

	for _, title := range []string{"A", "B", "C", "D"} {
		v.SetDraft(title)
		require.NoError(t, v.Submit(ctx))
	}

	state := v.State()
	require.Len(t, state.Todos, 4)
	assert.Equal(t, "D", state.Todos[0].Title)

	require.NoError(t, v.Toggle(ctx, state.Todos[0].ID))
	require.NoError(t, v.Toggle(ctx, state.Todos[1].ID))
	assert.Equal(t, 50.0, v.State().Stats().Percent)

	require.NoError(t, v.Delete(ctx, state.Todos[3].ID))

	// a fresh view sees what the server stored
	fresh := view.NewListView(view.NewClient(srv.URL, srv.Client()))
	require.NoError(t, fresh.Mount(ctx))
	assert.Equal(t, summarize(v.State().Todos), summarize(fresh.State().Todos))
}

func summarize(todos []model.Task) []string {
	out := make([]string, 0, len(todos))
	for _, todo := range todos {
		out = append(out, fmt.Sprintf("%d %s %t", todo.ID, todo.Title, todo.Completed))
	}
	return out
}

func TestClient_ServerDown(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	v := view.NewListView(view.NewClient(url, nil))
	assert.Error(t, v.Mount(context.Background()))
	assert.False(t, v.State().Loading)
}
