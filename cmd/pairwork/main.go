package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rpggio/pairwork/internal/config"
	"github.com/rpggio/pairwork/internal/logging"
	"github.com/spf13/cobra"
)

var version = "dev"

// globalOptions are shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "pairwork",
		Short: "Find the pair of employees who worked together longest on each project",
		Long: `pairwork reads employee project assignments (EmpID, ProjectID, DateFrom, DateTo)
and reports, for every project, the two employees whose assignments overlap the
most days.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.closer != nil {
				_ = opts.closer.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default $PAIRWORK_CONFIG_PATH)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newPairsCmd(opts))
	root.AddCommand(newServeCmd(opts))
	return root
}

func (o *globalOptions) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	// Logs go to stderr so stdout stays clean for results and JSON-RPC.
	logger, closer, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("log file error: %w", err)
	}

	o.cfg = cfg
	o.logger = logger
	o.closer = closer
	return nil
}
