package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre un pool a Postgres usando pgx (database/sql) y verifica la conexión.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// Solo lecturas puntuales por fecha; pocas conexiones alcanzan.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS calendar_days (
	solar_date   DATE PRIMARY KEY,
	lunar_year   INTEGER NOT NULL,
	lunar_month  SMALLINT NOT NULL,
	lunar_day    SMALLINT NOT NULL,
	lunar_leap   BOOLEAN NOT NULL DEFAULT FALSE,
	year_stem    SMALLINT NOT NULL CHECK (year_stem BETWEEN 0 AND 9),
	year_branch  SMALLINT NOT NULL CHECK (year_branch BETWEEN 0 AND 11),
	month_stem   SMALLINT NOT NULL CHECK (month_stem BETWEEN 0 AND 9),
	month_branch SMALLINT NOT NULL CHECK (month_branch BETWEEN 0 AND 11),
	day_stem     SMALLINT NOT NULL CHECK (day_stem BETWEEN 0 AND 9),
	day_branch   SMALLINT NOT NULL CHECK (day_branch BETWEEN 0 AND 11)
)`

// Migrate crea la tabla si no existe.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
