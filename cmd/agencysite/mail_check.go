package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/osa911/agencysite/internal/service"
	"github.com/osa911/agencysite/internal/version"
)

var mailTestCmd = &cobra.Command{
	Use:   "mail-test",
	Short: "Send one test email through the configured provider",
	Long: `Send one test message through the configured mail provider to check
credentials and sender settings without submitting the contact form.

Example:
  agencysite mail-test
  agencysite mail-test --to ops@agency.dev`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadRuntime()
		defer logger.Close()

		to, _ := cmd.Flags().GetString("to")
		if to == "" {
			to = cfg.Mail.To
		}
		if to == "" {
			logger.Error("No recipient: pass --to or set CONTACT_TO_EMAIL")
			os.Exit(1)
		}

		_, mailer := buildPipeline(cfg)
		if !mailer.Configured() {
			logger.Error("Mail provider %s is not configured", cfg.Mail.Provider)
			os.Exit(1)
		}

		msg := &service.Email{
			From:    cfg.Mail.From,
			To:      []string{to},
			Subject: "agencysite test message",
			Text:    fmt.Sprintf("This is a test message from agencysite %s.\n", version.Version),
			HTML:    fmt.Sprintf("<p>This is a test message from agencysite %s.</p>", version.Version),
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Mail.Timeout+5*time.Second)
		defer cancel()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Sending test message via %s...", cfg.Mail.Provider)
		s.Start()
		err := mailer.Send(ctx, msg)
		s.Stop()

		if err != nil {
			logger.Error("Failed to send test message: %v", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Test message sent to %s\n", to)
	},
}
