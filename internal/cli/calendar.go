package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskboard/pkg/gcalendar"
)

var calendarAuthCmd = &cobra.Command{
	Use:   "calendar-auth [credentials.json]",
	Short: "Authorize Google Calendar access for OAuth Desktop credentials",
	Long: `Run the one-time OAuth flow for Google Calendar.

Open the printed URL, sign in, and paste the authorization code back. The
token is saved as token.json next to the credentials file, where the server
looks for it. Service Account credentials do not need this step.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		credsPath := "google-credentials.json"
		if len(args) > 0 {
			credsPath = args[0]
		}

		config, err := gcalendar.OAuthConfigFromFile(credsPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "1. Open this URL in a browser and sign in with your Google account:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, gcalendar.AuthCodeURL(config))
		fmt.Fprintln(out)
		fmt.Fprint(out, "2. Paste the authorization code here and press Enter: ")

		var code string
		if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
			return fmt.Errorf("reading authorization code: %w", err)
		}

		tokenPath := gcalendar.TokenPath(credsPath)
		if err := gcalendar.ExchangeAndSaveToken(cmd.Context(), config, code, tokenPath); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nToken saved to %s. Restart the server to enable calendar sync.\n", tokenPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarAuthCmd)
}
