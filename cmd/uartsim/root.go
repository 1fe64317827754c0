package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "uartsim",
	Short: "uartsim simulates a serial transmitter core cycle by cycle.",
	Long: `uartsim simulates a serial transmitter core cycle by cycle. ` +
		`It feeds data words through the transmitter, decodes the line with a ` +
		`reference receiver, and can dump the waveform as CSV, VCD, or SQLite.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotEnv()
	},
}

// loadDotEnv loads a .env file when one exists, so flag defaults can be
// set per project without retyping them. Flags given on the command line
// still win.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}

	err := godotenv.Load()
	if err != nil {
		atexit.Fatalf("failed to load .env: %v", err)
	}
}

// envOrDefault returns the value of the environment variable when it is
// set, and the fallback otherwise.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}
