package main

import (
	"context"
	"fmt"
	"os"

	"passaro-ok/internal/app"
	"passaro-ok/internal/platform/config"
	"passaro-ok/internal/platform/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootFlags son los flags persistentes de birdctl.
type rootFlags struct {
	configPath string
	verbose    bool
}

// newApp lee la config y arma la app. El llamador hace defer a.Close().
func newApp(ctx context.Context, f *rootFlags) (*app.App, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	log := logger.Nop()
	if f.verbose {
		log = logger.New(logger.Options{
			Level:  logger.Debug,
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    "birdctl",
			Writer: os.Stderr,
		})
	}

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "birdctl",
		Short:         "Pássaro OK: chequeo diario de salud de tus pájaros",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", config.PathFromEnv(), "path to TOML config (default $PASSARO_CONFIG)")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newConfigCmd(),
		newBirdsCmd(f),
		newCheckCmd(f),
		newHistoryCmd(f),
		newExportCmd(f),
		newPremiumCmd(f),
	)
	return root
}
