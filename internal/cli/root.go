// Package cli implements mtcsctl's command tree: run (clear a CSV
// obligation file) and check (verify a previously written set-off
// CSV against the checker's post-conditions).
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mtcs/internal/config"
	"github.com/katalvlaran/mtcs/internal/logging"
)

var (
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "mtcsctl",
	Short:   "mtcsctl clears multilateral trade credit obligations",
	Long:    `mtcsctl runs the multilateral trade credit set-off engine over a CSV obligation file and writes the resulting set-offs back out as CSV.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and runs it.
// Called once by cmd/mtcsctl's main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
}

func initConfig() {
	var opts []config.LoaderOption
	if configPath != "" {
		opts = append(opts, config.WithConfigPaths(configPath))
	}

	loaded, err := config.NewLoader(opts...).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	logger = logging.New(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
}
