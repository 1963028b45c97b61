package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bazi-chart/internal/adapters/calendar/lunargo"
	pg "bazi-chart/internal/adapters/calendar/postgres"

	"github.com/spf13/cobra"
)

const seedDateLayout = "2006-01-02"

func newSeedCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Precalcula la tabla calendar_days en Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()

			if strings.TrimSpace(cfg.Calendar.DSN) == "" {
				return errors.New("calendar.dsn is required (BAZI_CALENDAR_DSN)")
			}
			start, end, err := parseRange(from, to)
			if err != nil {
				return err
			}

			db, err := pg.Open(cfg.Calendar.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}

			began := time.Now()
			n, err := pg.NewAuthority(db).Seed(ctx, lunargo.New(), start, end)
			if err != nil {
				return err
			}
			lg.Info("calendar seeded", map[string]any{
				"from":        from,
				"to":          to,
				"rows":        n,
				"duration_ms": time.Since(began).Milliseconds(),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d days\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "1900-01-01", "first day, inclusive")
	cmd.Flags().StringVar(&to, "to", "2100-12-31", "last day, inclusive")
	return cmd
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse(seedDateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--from: %w", err)
	}
	end, err := time.Parse(seedDateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("--to: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("--to is before --from")
	}
	return start, end, nil
}
