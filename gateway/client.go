// Package gateway is the client-side adapter for the task API: it
// implements store.Gateway over HTTP and maps transport results onto
// the core error sentinels.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Ismail26477/veda-ai-task1/core"
)

type Client struct {
	log  *slog.Logger
	base string
	http *http.Client
}

// NewClient builds a client for the given base URL, e.g.
// "http://localhost:3001".
func NewClient(base string, log *slog.Logger) *Client {
	return &Client{
		log:  log,
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
	}
}

func (c *Client) url(path string) string {
	return c.base + path
}

// apiError pulls the {"error": "..."} body out of a failed response.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return fmt.Errorf("api: %s (status %d)", body.Error, resp.StatusCode)
	}
	return fmt.Errorf("api: unexpected status %d", resp.StatusCode)
}

// Ping reports whether the server answers its health check.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/health"), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

func (c *Client) List(ctx context.Context) ([]core.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/tasks"), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var out []core.Task
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, t core.Task) (core.Task, error) {
	payload, err := json.Marshal(t)
	if err != nil {
		return core.Task{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/api/tasks"), bytes.NewReader(payload))
	if err != nil {
		return core.Task{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return core.Task{}, fmt.Errorf("create task: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return core.Task{}, apiError(resp)
	}

	var created core.Task
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return core.Task{}, fmt.Errorf("decode created task: %w", err)
	}
	return created, nil
}

func (c *Client) Update(ctx context.Context, id string, p core.Patch) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.url("/api/tasks/"+id), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return core.ErrNotFound
	default:
		return apiError(resp)
	}
}

func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.url("/api/tasks/"+id), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return core.ErrNotFound
	default:
		return apiError(resp)
	}
}
