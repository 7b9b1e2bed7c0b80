package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Show the effective configuration with secrets redacted",
	Long: `Print the effective configuration with every secret masked, then report
whether the contact form can deliver. Exits non-zero when it cannot.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadRuntime()
		defer logger.Close()

		out, err := json.MarshalIndent(cfg.Redacted(), "", "  ")
		if err != nil {
			logger.Error("Failed to render config: %v", err)
			os.Exit(1)
		}
		fmt.Println(string(out))

		inquiries, _ := buildPipeline(cfg)
		captcha, mail := inquiries.DeliveryReady()

		fmt.Println()
		fmt.Printf("CAPTCHA (%s): %s\n", cfg.Captcha.Provider, status(captcha))
		fmt.Printf("Mail (%s):    %s\n", cfg.Mail.Provider, status(mail))
		if cfg.OTLPEndpoint != "" {
			fmt.Printf("Tracing:      exporting to %s\n", cfg.OTLPEndpoint)
		}

		if !captcha || !mail {
			os.Exit(1)
		}
	},
}

func status(ok bool) string {
	if ok {
		return "configured"
	}
	return "NOT configured"
}
