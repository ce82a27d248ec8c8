package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/sirupsen/logrus"

	"github.com/limbo/fitquest/pkg/cleanup"
)

// NewPool opens the shared pgx pool used by every repository and registers its shutdown.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		logrus.Fatal("parsing postgres config error: " + err.Error())
	}
	poolCfg.MaxConns = 25
	poolCfg.MinConns = 2
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logrus.Fatal("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		logrus.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

// Migrate applies goose migrations from dir.
func Migrate(cfg DBConfig, dir string) error {
	if dir == "" {
		return errors.New("migrations dir is empty")
	}
	db, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err = goose.Up(db, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}

func ping(conn PgConnection, repo string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.Ping(ctx); err != nil {
		logrus.Fatal("error while pinging connection for " + repo + ": " + err.Error())
	}
}
