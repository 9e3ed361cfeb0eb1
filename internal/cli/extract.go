package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/extraction"
	"taskboard/internal/task"
)

const dateLayout = "2006-01-02"

var (
	extractDate   string
	extractFormat string
	extractSave   bool
	extractSource string
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract tasks from text",
	Long: `Extract actionable tasks from free-form text.

The text is taken from the arguments, or read from stdin when none are given:

  taskboard extract "Submit the quarterly report by Friday"
  cat notes.txt | taskboard extract --format yaml

Relative dates are resolved against --date (YYYY-MM-DD, default today).
With --save the extracted tasks are also imported into the task store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(extractFormat)
		if err != nil {
			return err
		}

		input, err := readExtractInput(cmd.InOrStdin(), args, extractDate)
		if err != nil {
			return err
		}

		app, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		out, err := app.Extraction.Extract(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("extracting tasks: %w", err)
		}

		if err := render(cmd.OutOrStdout(), format, out); err != nil {
			return err
		}

		if !extractSave || len(out.Tasks) == 0 {
			return nil
		}

		saved, err := app.Tasks.CreateBulk(cmd.Context(), task.CreateBulkInput{
			Tasks:  toBulkTasks(out.Tasks),
			Source: extractSource,
		})
		if err != nil {
			return fmt.Errorf("saving tasks: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d task(s)\n", len(saved.Tasks))
		return nil
	},
}

// readExtractInput joins args into the text, falling back to stdin.
func readExtractInput(stdin io.Reader, args []string, date string) (extraction.ExtractInput, error) {
	var in extraction.ExtractInput

	if len(args) > 0 {
		in.Text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return in, fmt.Errorf("reading stdin: %w", err)
		}
		in.Text = string(data)
	}
	if strings.TrimSpace(in.Text) == "" {
		return in, fmt.Errorf("no text given: pass it as an argument or on stdin")
	}

	if date != "" {
		ref, err := time.Parse(dateLayout, date)
		if err != nil {
			return in, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
		}
		in.ReferenceDate = ref
	}
	return in, nil
}

func toBulkTasks(tasks []extraction.ExtractedTask) []task.BulkTask {
	out := make([]task.BulkTask, len(tasks))
	for i, t := range tasks {
		out[i] = task.BulkTask{
			Title:       t.Title,
			Description: t.Description,
			DueDate:     t.DueDate,
			Priority:    task.Priority(t.Priority),
			Category:    t.Category,
		}
	}
	return out
}

func init() {
	extractCmd.Flags().StringVar(&extractDate, "date", "", "Reference date for relative dates (YYYY-MM-DD)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", formatTable, "Output format: table, yaml or json")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "Import the extracted tasks into the task store")
	extractCmd.Flags().StringVar(&extractSource, "source", task.DefaultBulkSource, "Source recorded on saved tasks")
	rootCmd.AddCommand(extractCmd)
}
