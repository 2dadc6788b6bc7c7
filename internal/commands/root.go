package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bankcsv-dev/bankcsv/internal/buildinfo"
	"github.com/bankcsv-dev/bankcsv/internal/config"
)

// rootOptions are the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "bankcsv",
		Short:   "Merge N26, PayPal and DKB exports into monthly CSV files",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <user config dir>/bankcsv/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log per-row details")

	rootCmd.AddCommand(newMergeCommand(opts))

	return rootCmd
}

func (o *rootOptions) logger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "bankcsv"})
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads the config file. An explicit --config must exist; the
// default location is optional.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		if _, err := os.Stat(o.configPath); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		return config.Load(o.configPath)
	}

	path, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}
