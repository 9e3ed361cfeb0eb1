package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	tbmcp "taskboard/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the taskboard MCP server on stdio",
	Long: `Start the taskboard MCP (Model Context Protocol) server on stdio.

The server exposes two tools to AI coding assistants: extract_tasks, which
runs the extraction pipeline on a piece of text, and list_tasks, which reads
the task store. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		srv := tbmcp.NewServer(app.Logger, app.Extraction, app.Tasks, appVersion)
		app.Logger.Infof(ctx, "MCP server %s listening on stdio", appVersion)

		if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("running MCP server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
