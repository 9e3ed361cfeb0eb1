package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"taskboard/internal/extraction"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	priorityHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	priorityMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	priorityLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// documentTask is the yaml/json shape. Field names match the HTTP API.
type documentTask struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Priority    string `json:"priority" yaml:"priority"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
}

type document struct {
	Tasks        []documentTask `json:"tasks" yaml:"tasks"`
	DroppedCount int            `json:"droppedCount" yaml:"droppedCount"`
}

func parseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case formatTable, formatYAML, formatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q (use table, yaml or json)", s)
}

func render(w io.Writer, format string, out extraction.ExtractOutput) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(toDocument(out), "", "  ")
		if err != nil {
			return fmt.Errorf("formatting tasks as JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(out)); err != nil {
			return fmt.Errorf("formatting tasks as YAML: %w", err)
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, renderTable(out))
		return err
	}
}

func toDocument(out extraction.ExtractOutput) document {
	doc := document{
		Tasks:        make([]documentTask, len(out.Tasks)),
		DroppedCount: out.DroppedCount,
	}
	for i, t := range out.Tasks {
		doc.Tasks[i] = documentTask{
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Priority:    string(t.Priority),
			Category:    t.Category,
		}
	}
	return doc
}

// renderTable lays the tasks out in padded columns.
func renderTable(out extraction.ExtractOutput) string {
	if len(out.Tasks) == 0 {
		return mutedStyle.Render("No tasks found.") + "\n"
	}

	headers := []string{"#", "TITLE", "DUE", "PRIORITY", "CATEGORY"}
	rows := make([][]string, len(out.Tasks))
	for i, t := range out.Tasks {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			t.Title,
			orDash(t.DueDate),
			string(t.Priority),
			orDash(t.Category),
		}
	}

	widths := make([]int, len(headers))
	for c, h := range headers {
		widths[c] = lipgloss.Width(h)
		for _, row := range rows {
			if w := lipgloss.Width(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var sb strings.Builder
	cells := make([]string, len(headers))
	for c, h := range headers {
		cells[c] = headerStyle.Width(widths[c] + 2).Render(h)
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")

	for _, row := range rows {
		for c, v := range row {
			style := lipgloss.NewStyle()
			if c == 3 {
				style = priorityStyle(extraction.Priority(v))
			}
			cells[c] = style.Width(widths[c] + 2).Render(v)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}

	for _, t := range out.Tasks {
		if t.Description != "" {
			sb.WriteString("\n")
			break
		}
	}
	for i, t := range out.Tasks {
		if t.Description == "" {
			continue
		}
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("%d. %s", i+1, t.Description)) + "\n")
	}

	if out.DroppedCount > 0 {
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("\n%d candidate(s) dropped by validation", out.DroppedCount)) + "\n")
	}
	return sb.String()
}

func priorityStyle(p extraction.Priority) lipgloss.Style {
	switch p {
	case extraction.PriorityHigh:
		return priorityHigh
	case extraction.PriorityMedium:
		return priorityMedium
	default:
		return priorityLow
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
