package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osa911/agencysite/internal/config"
	"github.com/osa911/agencysite/internal/logging"
	"github.com/osa911/agencysite/internal/service"
	"github.com/osa911/agencysite/internal/version"
)

var logger *logging.Logger

// loadRuntime loads configuration and initializes the global logger.
func loadRuntime() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logConfig := &logging.LogConfig{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		MaxSize:     100,
		MaxBackups:  3,
		MaxAge:      7,
		LogRequests: cfg.LogRequests,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = logging.GetGlobalLogger()

	return cfg
}

// buildPipeline wires the CAPTCHA verifier and mailer selected by cfg.
func buildPipeline(cfg *config.Config) (*service.InquiryService, service.Mailer) {
	captcha := service.NewCaptchaService(cfg.Captcha)
	mailer, err := service.NewMailer(cfg.Mail, logger)
	if err != nil {
		logger.Error("Failed to create mailer: %v", err)
		os.Exit(1)
	}
	return service.NewInquiryService(captcha, mailer, cfg.Mail, logger), mailer
}

var rootCmd = &cobra.Command{
	Use:   "agencysite",
	Short: "Agency website backend - contact form delivery",
	Long: `agencysite serves the agency brochure site and its contact form.
Each inquiry is validated, checked against the CAPTCHA provider and
delivered as one email to the agency mailbox.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetBuildInfo()
		fmt.Printf("agencysite %s\n", version.Info())
		fmt.Printf("  Go version: %s\n", info.GoVersion)
		fmt.Printf("  Platform:   %s\n", info.Platform)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkConfigCmd)
	rootCmd.AddCommand(mailTestCmd)

	mailTestCmd.Flags().String("to", "", "Recipient address (defaults to CONTACT_TO_EMAIL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
