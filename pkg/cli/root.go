// Package cli implements the cloudstub command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// jsonOutput is a persistent flag available to all subcommands
	jsonOutput bool

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cloudstub",
	Short: "cloudstub is a mock cloud-platform management API",
	Long: `cloudstub serves deterministic canned responses shaped like a real cloud
platform's management API (deployments, organizations, account, API keys),
so client integrations can be tested without a live backend. Nothing is
provisioned, persisted, or authenticated.

Configuration can be provided via flags, CLOUDSTUB_* environment variables,
or a YAML configuration file.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
}
