package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bazi-chart/internal/platform/config"
	"bazi-chart/internal/platform/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:          "bazictl",
		Short:        "Cartas BaZi (八字) desde la línea de comandos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(cfgFile); err != nil {
				return err
			}
			return bindFlags(cmd.Flags(), map[string]string{
				"log-level": "log.level",
			})
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./bazi.yaml)")
	cmd.PersistentFlags().String("log-level", "", "debug, info, warn or error")

	cmd.AddCommand(newServeCmd(), newChartCmd(), newSeedCmd())
	return cmd
}

// bindFlags enlaza flags a claves de viper; un flag sin tocar no pisa archivo ni env.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}
	return nil
}

// loadConfig + logger a stderr del comando, para no ensuciar la salida de chart.
func loadConfig(cmd *cobra.Command) (config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
		Out:    cmd.ErrOrStderr(),
	})
	return cfg, lg, nil
}
