package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"bazi-chart/internal/domain/bazi"
	"bazi-chart/internal/router"

	"github.com/spf13/cobra"
)

func newChartCmd() *cobra.Command {
	var (
		date    string
		tm      string
		asJSON  bool
		indices bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Calcula los cuatro pilares para una fecha y hora",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()

			authority, closer, err := router.BuildAuthority(cfg.Calendar)
			if err != nil {
				return err
			}
			defer closer.Close()

			svc := bazi.NewService(authority, cfg.Calendar.Timeout)
			fp, err := svc.Chart(cmd.Context(), date, tm)
			if err != nil {
				lg.Debug("chart failed", map[string]any{"kind": bazi.KindOf(err).String(), "error": err})
				return err
			}

			if asJSON {
				return writeChartJSON(cmd.OutOrStdout(), fp)
			}
			writeChartText(cmd.OutOrStdout(), fp, indices)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "birth date, YYYY-MM-DD")
	cmd.Flags().StringVar(&tm, "time", "", "birth time, HH:MM (24h)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the same payload as the API")
	cmd.Flags().BoolVar(&indices, "indices", false, "append stem/branch indices to each pillar")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

func writeChartJSON(w io.Writer, fp bazi.FourPillars) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(bazi.FormatResponse(fp))
}

func writeChartText(w io.Writer, fp bazi.FourPillars, indices bool) {
	rows := []struct {
		name   string
		pillar bazi.Pillar
	}{
		{"年柱", fp.Year},
		{"月柱", fp.Month},
		{"日柱", fp.Day},
		{"時柱", fp.Hour},
	}
	for _, r := range rows {
		if indices {
			fmt.Fprintf(w, "%s  %s  (%d,%d)\n", r.name, r.pillar.Label, r.pillar.Pair.Stem, r.pillar.Pair.Branch)
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", r.name, r.pillar.Label)
	}
	fmt.Fprintf(w, "農曆  %s\n", bazi.LunarLabel(fp.Lunar.Year, fp.Lunar.Month, fp.Lunar.Day, fp.Lunar.IsLeapMonth))
}
