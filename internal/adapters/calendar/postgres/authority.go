package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bazi-chart/internal/ports/calendar"
)

// Authority lee resoluciones precalculadas de calendar_days.
type Authority struct {
	db *sql.DB
}

func NewAuthority(db *sql.DB) *Authority {
	return &Authority{db: db}
}

func solarDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func (a *Authority) Resolve(ctx context.Context, year, month, day int) (calendar.Resolution, error) {
	var (
		res  calendar.Resolution
		leap bool
	)
	err := a.db.QueryRowContext(ctx, `
		SELECT
			lunar_year, lunar_month, lunar_day, lunar_leap,
			year_stem, year_branch,
			month_stem, month_branch,
			day_stem, day_branch
		FROM calendar_days
		WHERE solar_date = $1
	`, solarDate(year, month, day)).Scan(
		&res.Lunar.Year,
		&res.Lunar.Month,
		&res.Lunar.Day,
		&leap,
		&res.Year.Stem,
		&res.Year.Branch,
		&res.Month.Stem,
		&res.Month.Branch,
		&res.Day.Stem,
		&res.Day.Branch,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return calendar.Resolution{}, fmt.Errorf("%w: %04d-%02d-%02d not in calendar_days", calendar.ErrUnsupportedDate, year, month, day)
	}
	if err != nil {
		return calendar.Resolution{}, fmt.Errorf("%w: %w", calendar.ErrUnavailable, err)
	}
	res.Lunar.IsLeapMonth = leap
	return res, nil
}

// Upsert guarda (o reemplaza) la resolución de una fecha.
func (a *Authority) Upsert(ctx context.Context, date time.Time, res calendar.Resolution) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO calendar_days (
			solar_date,
			lunar_year, lunar_month, lunar_day, lunar_leap,
			year_stem, year_branch,
			month_stem, month_branch,
			day_stem, day_branch
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (solar_date) DO UPDATE SET
			lunar_year = EXCLUDED.lunar_year,
			lunar_month = EXCLUDED.lunar_month,
			lunar_day = EXCLUDED.lunar_day,
			lunar_leap = EXCLUDED.lunar_leap,
			year_stem = EXCLUDED.year_stem,
			year_branch = EXCLUDED.year_branch,
			month_stem = EXCLUDED.month_stem,
			month_branch = EXCLUDED.month_branch,
			day_stem = EXCLUDED.day_stem,
			day_branch = EXCLUDED.day_branch
	`,
		solarDate(date.Year(), int(date.Month()), date.Day()),
		res.Lunar.Year,
		res.Lunar.Month,
		res.Lunar.Day,
		res.Lunar.IsLeapMonth,
		res.Year.Stem,
		res.Year.Branch,
		res.Month.Stem,
		res.Month.Branch,
		res.Day.Stem,
		res.Day.Branch,
	)
	return err
}

// Seed llena calendar_days para [from, to] (ambos inclusive) usando source.
// Devuelve cuántas fechas se escribieron.
func (a *Authority) Seed(ctx context.Context, source calendar.Authority, from, to time.Time) (int, error) {
	if to.Before(from) {
		return 0, errors.New("seed: to is before from")
	}

	n := 0
	for d := solarDate(from.Year(), int(from.Month()), from.Day()); !d.After(to); d = d.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		res, err := source.Resolve(ctx, d.Year(), int(d.Month()), d.Day())
		if err != nil {
			return n, fmt.Errorf("seed %s: %w", d.Format(time.DateOnly), err)
		}
		if err := a.Upsert(ctx, d, res); err != nil {
			return n, fmt.Errorf("seed %s: %w", d.Format(time.DateOnly), err)
		}
		n++
	}
	return n, nil
}
