package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"taskboard/internal/extraction"
	"taskboard/internal/task"
	taskRepo "taskboard/internal/task/repository/sqlite"
	taskUC "taskboard/internal/task/usecase"
	"taskboard/pkg/log"
	"taskboard/pkg/sqlite"
)

// --- Fakes ---

type fakeExtraction struct {
	out    extraction.ExtractOutput
	err    error
	lastIn extraction.ExtractInput
}

func (f *fakeExtraction) Extract(_ context.Context, in extraction.ExtractInput) (extraction.ExtractOutput, error) {
	f.lastIn = in
	return f.out, f.err
}

func sampleOutput() extraction.ExtractOutput {
	return extraction.ExtractOutput{
		Tasks: []extraction.ExtractedTask{
			{Title: "Submit quarterly report", Description: "Finance needs it first", DueDate: "2024-03-15", Priority: extraction.PriorityHigh, Category: "work"},
			{Title: "Book dentist", Priority: extraction.PriorityLow},
		},
		DroppedCount: 1,
	}
}

// --- Helpers ---

// stubApp replaces loadApp for the duration of the test and returns the
// task use case backed by an in-memory database.
func stubApp(t *testing.T, ext extraction.UseCase) task.UseCase {
	t.Helper()

	db, err := sqlite.Connect(context.Background(), sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("sqlite.Connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := log.NewNop()
	tasks := taskUC.New(l, taskRepo.New(db, l), nil, "")

	orig := loadApp
	loadApp = func(context.Context) (*App, error) {
		return &App{
			Logger:     l,
			Extraction: ext,
			Tasks:      tasks,
			Close:      func() error { return nil },
		}, nil
	}
	t.Cleanup(func() { loadApp = orig })

	return tasks
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	extractDate = ""
	extractFormat = formatTable
	extractSave = false
	extractSource = task.DefaultBulkSource

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// --- Unit tests ---

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"table", formatTable, false},
		{"YAML", formatYAML, false},
		{" json ", formatJSON, false},
		{"csv", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadExtractInput(t *testing.T) {
	t.Run("args are joined", func(t *testing.T) {
		in, err := readExtractInput(strings.NewReader("ignored"), []string{"call", "mom"}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Text != "call mom" {
			t.Errorf("text = %q", in.Text)
		}
		if !in.ReferenceDate.IsZero() {
			t.Errorf("reference date = %v, want zero", in.ReferenceDate)
		}
	})

	t.Run("stdin when no args", func(t *testing.T) {
		in, err := readExtractInput(strings.NewReader("notes from stdin\n"), nil, "2024-03-11")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Text != "notes from stdin\n" {
			t.Errorf("text = %q", in.Text)
		}
		if want := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC); !in.ReferenceDate.Equal(want) {
			t.Errorf("reference date = %v, want %v", in.ReferenceDate, want)
		}
	})

	t.Run("blank text", func(t *testing.T) {
		if _, err := readExtractInput(strings.NewReader("  \n"), nil, ""); err == nil {
			t.Fatal("expected error for blank text")
		}
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := readExtractInput(nil, []string{"x"}, "11/03/2024")
		if err == nil || !strings.Contains(err.Error(), "--date") {
			t.Fatalf("err = %v, want --date error", err)
		}
	})
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, formatJSON, sampleOutput()); err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(doc.Tasks) != 2 || doc.DroppedCount != 1 {
		t.Fatalf("doc = %+v", doc)
	}
	if !strings.Contains(buf.String(), `"dueDate": "2024-03-15"`) {
		t.Errorf("missing camelCase dueDate:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), `"category": ""`) {
		t.Errorf("empty category should be omitted:\n%s", buf.String())
	}
}

func TestRenderJSON_NoTasksIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, formatJSON, extraction.ExtractOutput{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `"tasks": []`) {
		t.Errorf("want empty tasks array, got:\n%s", buf.String())
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, formatYAML, sampleOutput()); err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if doc.Tasks[0].Priority != "high" || doc.Tasks[0].DueDate != "2024-03-15" {
		t.Errorf("first task = %+v", doc.Tasks[0])
	}
	if doc.Tasks[1].Category != "" {
		t.Errorf("second task category = %q", doc.Tasks[1].Category)
	}
}

func TestRenderTable(t *testing.T) {
	got := renderTable(sampleOutput())

	for _, want := range []string{"TITLE", "Submit quarterly report", "2024-03-15", "Book dentist", "Finance needs it first", "1 candidate(s) dropped"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("want header and two rows, got:\n%s", got)
	}
	if !strings.Contains(lines[2], "-") {
		t.Errorf("missing dash placeholder for empty due date: %q", lines[2])
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := renderTable(extraction.ExtractOutput{}); !strings.Contains(got, "No tasks found.") {
		t.Errorf("got %q", got)
	}
}

// --- Command tests ---

func TestExtractCmd_Args(t *testing.T) {
	ext := &fakeExtraction{out: sampleOutput()}
	stubApp(t, ext)

	stdout, _, err := execute(t, "", "extract", "--format", "json", "--date", "2024-03-11", "Submit", "the", "report")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if ext.lastIn.Text != "Submit the report" {
		t.Errorf("text = %q", ext.lastIn.Text)
	}
	if !strings.Contains(stdout, `"title": "Submit quarterly report"`) {
		t.Errorf("stdout:\n%s", stdout)
	}
}

func TestExtractCmd_Stdin(t *testing.T) {
	ext := &fakeExtraction{out: sampleOutput()}
	stubApp(t, ext)

	stdout, _, err := execute(t, "Book the dentist", "extract", "-f", "yaml")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if ext.lastIn.Text != "Book the dentist" {
		t.Errorf("text = %q", ext.lastIn.Text)
	}
	if !strings.Contains(stdout, "droppedCount: 1") {
		t.Errorf("stdout:\n%s", stdout)
	}
}

func TestExtractCmd_BadFormat(t *testing.T) {
	stubApp(t, &fakeExtraction{})

	_, _, err := execute(t, "", "extract", "--format", "xml", "text")
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("err = %v", err)
	}
}

func TestExtractCmd_ExtractionFailure(t *testing.T) {
	stubApp(t, &fakeExtraction{err: extraction.NewError(extraction.ErrServiceUnavailable, errors.New("timeout"))})

	_, _, err := execute(t, "", "extract", "text")
	if !errors.Is(err, extraction.ErrServiceUnavailable) {
		t.Fatalf("err = %v, want ErrServiceUnavailable", err)
	}
}

func TestExtractCmd_Save(t *testing.T) {
	tasks := stubApp(t, &fakeExtraction{out: sampleOutput()})

	_, stderr, err := execute(t, "", "extract", "--save", "--source", "cli", "notes")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stderr, "Saved 2 task(s)") {
		t.Errorf("stderr = %q", stderr)
	}

	stored, err := tasks.List(context.Background(), task.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored %d tasks, want 2", len(stored))
	}
	for _, s := range stored {
		if !s.IsAIGenerated || s.Source != "cli" || s.Status != task.StatusTodo {
			t.Errorf("stored task = %+v", s)
		}
	}
}

func TestExtractCmd_WithoutSaveStoresNothing(t *testing.T) {
	tasks := stubApp(t, &fakeExtraction{out: sampleOutput()})

	if _, _, err := execute(t, "", "extract", "notes"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	stored, _ := tasks.List(context.Background(), task.ListInput{})
	if len(stored) != 0 {
		t.Errorf("stored %d tasks, want 0", len(stored))
	}
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2024-03-11")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	stdout, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, "taskboard 1.2.3") || !strings.Contains(stdout, "commit: abc123") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestCalendarAuthCmd_MissingCredentials(t *testing.T) {
	_, _, err := execute(t, "", "calendar-auth", t.TempDir()+"/missing.json")
	if err == nil || !strings.Contains(err.Error(), "failed to read credentials file") {
		t.Fatalf("err = %v", err)
	}
}
