package suggest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/store"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("expected system+user messages, got %+v", req.Messages)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(srvURL string) *Client {
	return NewClient(store.AIConfig{
		BaseURL: srvURL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

func TestTodosParsesSchema(t *testing.T) {
	srv := completionServer(t, `{"todos":[{"id":"1","title":"Plan the week"},{"id":"2","title":"Clear inbox"}]}`)
	defer srv.Close()

	todos, err := testClient(srv.URL).Todos(context.Background(), planner.PromptContext{Vision: "focus"})
	if err != nil {
		t.Fatalf("todos: %v", err)
	}
	if len(todos) != 2 || todos[0].Title != "Plan the week" {
		t.Fatalf("unexpected todos: %+v", todos)
	}
}

func TestTodosRejectsMissingTitle(t *testing.T) {
	srv := completionServer(t, `{"todos":[{"id":"1"}]}`)
	defer srv.Close()

	if _, err := testClient(srv.URL).Todos(context.Background(), planner.PromptContext{}); err == nil {
		t.Fatalf("expected schema validation error")
	}
}

func TestGoalsParsesSchema(t *testing.T) {
	srv := completionServer(t, `{"goals":[{"id":"g1","text":"outline chapter"}]}`)
	defer srv.Close()

	goals, err := testClient(srv.URL).Goals(context.Background(), planner.PromptContext{})
	if err != nil {
		t.Fatalf("goals: %v", err)
	}
	if len(goals) != 1 || goals[0].Text != "outline chapter" {
		t.Fatalf("unexpected goals: %+v", goals)
	}
}

func TestMilestonesParsesNestedTasks(t *testing.T) {
	srv := completionServer(t, `{"milestones":[{"id":"m1","name":"Draft","dueDate":"2026-04-01","tasks":[{"id":"t1","title":"outline"}]}]}`)
	defer srv.Close()

	ms, err := testClient(srv.URL).Milestones(context.Background(), planner.PromptContext{}, "Book", "write a book")
	if err != nil {
		t.Fatalf("milestones: %v", err)
	}
	if len(ms) != 1 || ms[0].Name != "Draft" || len(ms[0].Tasks) != 1 {
		t.Fatalf("unexpected milestones: %+v", ms)
	}
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Todos(context.Background(), planner.PromptContext{})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestCompleteRequiresAPIKey(t *testing.T) {
	c := NewClient(store.AIConfig{BaseURL: "http://localhost:0"})
	if _, err := c.Todos(context.Background(), planner.PromptContext{}); err == nil {
		t.Fatalf("expected missing key error")
	}
}

func TestCancellationAbortsRequest(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client disconnect and
		// cancels the request context; otherwise srv.Close hangs forever.
		_, _ = io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := testClient(srv.URL).Todos(ctx, planner.PromptContext{})
	if err == nil || !strings.Contains(err.Error(), "context canceled") {
		t.Fatalf("expected cancellation error, got %v", err)
	}
}

func TestUserMessageSections(t *testing.T) {
	msg := userMessage(planner.PromptContext{
		Vision: "a calm year",
		Yearly: []string{"run a marathon"},
		Weekly: []string{"run 3 times"},
	})
	for _, want := range []string{"Vision:", "a calm year", "Unfinished yearly goals:", "- run a marathon", "- run 3 times"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "quarterly") {
		t.Fatalf("empty sections should be omitted:\n%s", msg)
	}
}
