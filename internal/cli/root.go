package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Taskboard - turn free-form text into tasks",
	Long: `Taskboard extracts actionable tasks from notes, emails and meeting
transcripts using the configured LLM providers.

The extract command prints the tasks found in a piece of text. The mcp
command serves the same pipeline, plus the stored task list, to AI coding
assistants over the Model Context Protocol.

Configuration is read from config.yaml (./config, . or /etc/taskboard/)
and environment variables, exactly as for the API server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "taskboard %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
