package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/portfolio-backend/internal/lib/email"
	"github.com/spf13/cobra"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Email template tools",
}

var emailPreviewCmd = &cobra.Command{
	Use:   "preview <template>",
	Short: "Render an email template with sample data to stdout",
	Example: `  portfolio email preview contact_notification > preview.html`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		html, err := email.Preview(email.Template(args[0]))
		if errors.Is(err, email.ErrUnknownTemplate) {
			return fmt.Errorf("%w %q, available: %s", err, args[0], templateNames())
		}
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	},
}

func init() {
	emailCmd.AddCommand(emailPreviewCmd)
}

func templateNames() string {
	var names []string
	for _, t := range email.Templates() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
