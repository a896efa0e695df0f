package view

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	dto "todo-list.com/todo-list/internal/data_models"
	model "todo-list.com/todo-list/internal/models"
)

// StatusError is returned for any non-2xx answer of the API.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("todo api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("todo api: status %d: %s", e.StatusCode, e.Message)
}

// Client implements API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) List(ctx context.Context) ([]model.Task, error) {
	var todos []model.Task
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *Client) Create(ctx context.Context, title string) (*model.Task, error) {
	var todo model.Task
	if err := c.do(ctx, http.MethodPost, "/todos", dto.CreateTodoRequest{Title: title}, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) SetCompleted(ctx context.Context, id int64, completed bool) (*model.Task, error) {
	req := dto.UpdateTodoRequest{ID: &id, Completed: &completed}

	var todo model.Task
	if err := c.do(ctx, http.MethodPut, "/todos", req, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	query := url.Values{"id": {strconv.FormatInt(id, 10)}}
	var res dto.MessageResponse
	return c.do(ctx, http.MethodDelete, "/todos?"+query.Encode(), nil, &res)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
