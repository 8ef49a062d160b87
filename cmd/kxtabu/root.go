package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kxtabu/config"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	k          int
	instance   instanceFlags
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "kxtabu",
		Short:         "Tabu search for kidney-exchange cycle packings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&f.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	pf.IntVar(&f.k, "k", 0, "override search.k, the maximum cycle length")
	f.instance.register(root)

	root.AddCommand(newRunCmd(f), newBoundCmd(f), newCyclesCmd(f))

	return root
}

// load resolves the configuration and the logger of one invocation.
// Logs go to the command's error stream.
func (f *rootFlags) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.k != 0 {
		cfg.Search.K = f.k
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, err
	}

	return cfg, logger, nil
}
