// Package mcp exposes task extraction and the task store as MCP tools so
// coding assistants can turn notes into tasks without the web client.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"taskboard/internal/extraction"
	"taskboard/internal/task"
	"taskboard/pkg/log"
)

const referenceDateLayout = "2006-01-02"

// Server wraps the use cases and registers them as MCP tools.
type Server struct {
	server     *gomcp.Server
	l          log.Logger
	extraction extraction.UseCase
	tasks      task.UseCase
}

// NewServer creates an MCP server. tasks may be nil, in which case only
// extract_tasks is registered.
func NewServer(l log.Logger, extractionUC extraction.UseCase, tasks task.UseCase, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		l:          l,
		extraction: extractionUC,
		tasks:      tasks,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "taskboard", Version: version},
		nil,
	)
	s.registerTools()

	return s
}

// Run serves over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying server. Tests connect to it over
// in-memory transports.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

type extractTasksInput struct {
	Text          string `json:"text" jsonschema:"free-form text such as meeting notes or an email"`
	ReferenceDate string `json:"reference_date,omitempty" jsonschema:"date (YYYY-MM-DD) that relative dates like tomorrow are resolved against. Defaults to today."`
}

type extractedTaskOutput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority"`
	Category    string `json:"category,omitempty"`
}

type extractTasksOutput struct {
	Tasks        []extractedTaskOutput `json:"tasks"`
	Count        int                   `json:"count"`
	DroppedCount int                   `json:"dropped_count"`
}

type listTasksInput struct {
	Status string `json:"status,omitempty" jsonschema:"filter by status (todo, in_progress, completed)"`
}

type taskOutput struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	DueDate       string `json:"due_date,omitempty"`
	Category      string `json:"category,omitempty"`
	CreatedAt     string `json:"created_at"`
	IsAIGenerated bool   `json:"is_ai_generated"`
	Source        string `json:"source,omitempty"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "extract_tasks",
		Description: "Extract actionable tasks (title, description, due date, priority, category) from free-form text. Nothing is saved.",
	}, s.handleExtractTasks)

	if s.tasks == nil {
		return
	}

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List stored tasks, newest first, with an optional status filter.",
	}, s.handleListTasks)
}

func (s *Server) handleExtractTasks(ctx context.Context, _ *gomcp.CallToolRequest, input extractTasksInput) (*gomcp.CallToolResult, extractTasksOutput, error) {
	empty := extractTasksOutput{Tasks: []extractedTaskOutput{}}

	in := extraction.ExtractInput{Text: input.Text}
	if input.ReferenceDate != "" {
		ref, err := time.Parse(referenceDateLayout, input.ReferenceDate)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid reference_date %q: expected YYYY-MM-DD", input.ReferenceDate)), empty, nil
		}
		in.ReferenceDate = ref
	}

	out, err := s.extraction.Extract(ctx, in)
	if err != nil {
		if errors.Is(err, extraction.ErrInvalidInput) {
			return errorResult("text is required"), empty, nil
		}
		s.l.Errorf(ctx, "mcp.extract_tasks: %v", err)
		return errorResult(fmt.Sprintf("extracting tasks: %s", err)), empty, nil
	}

	result := extractTasksOutput{
		Tasks:        make([]extractedTaskOutput, len(out.Tasks)),
		Count:        len(out.Tasks),
		DroppedCount: out.DroppedCount,
	}
	for i, t := range out.Tasks {
		result.Tasks[i] = extractedTaskOutput{
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Priority:    string(t.Priority),
			Category:    t.Category,
		}
	}
	return nil, result, nil
}

func (s *Server) handleListTasks(ctx context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	empty := listTasksOutput{Tasks: []taskOutput{}}

	status := task.Status(input.Status)
	if status != "" && !status.Valid() {
		return errorResult(fmt.Sprintf("invalid status %q: must be one of todo, in_progress, completed", input.Status)), empty, nil
	}

	tasks, err := s.tasks.List(ctx, task.ListInput{Status: status})
	if err != nil {
		s.l.Errorf(ctx, "mcp.list_tasks: %v", err)
		return errorResult(fmt.Sprintf("listing tasks: %s", err)), empty, nil
	}

	out := listTasksOutput{
		Tasks: make([]taskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func taskToOutput(t task.Task) taskOutput {
	return taskOutput{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		DueDate:       t.DueDate,
		Category:      t.Category,
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339),
		IsAIGenerated: t.IsAIGenerated,
		Source:        t.Source,
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
