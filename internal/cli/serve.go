package cli

import (
	"bazi-chart/internal/server"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP (POST /api/bazi)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(cmd.Flags(), map[string]string{
				"port": "http.port",
				"dev":  "app.dev_mode",
			}); err != nil {
				return err
			}
			cfg, lg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()

			return server.RunWithConfig(cmd.Context(), cfg, lg)
		},
	}

	cmd.Flags().Int("port", 0, "listen port (default 5001)")
	cmd.Flags().Bool("dev", false, "expose internal error details")
	return cmd
}
