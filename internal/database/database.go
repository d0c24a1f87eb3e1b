package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"examgen/internal/config"
	"examgen/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/sijms/go-ora/v2" // registers "oracle"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers "sqlite"
)

func init() {
	// sqlx does not know go-ora's driver name; it takes :name placeholders.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// DriverName maps the configured dialect to the database/sql driver name.
func DriverName(dialect string) (string, error) {
	switch dialect {
	case "sqlite":
		return "sqlite", nil
	case "postgres":
		return "pgx", nil
	case "oracle":
		return "oracle", nil
	}
	return "", fmt.Errorf("unsupported database dialect %q", dialect)
}

// Open connects with sqlx and pings the database.
func Open(cfg config.DBConfig) (*sqlx.DB, error) {
	driver, err := DriverName(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("db.dsn is empty")
	}

	db, err := sqlx.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	switch cfg.Driver {
	case "sqlite":
		// one writer; also keeps :memory: databases on a single connection
		db.SetMaxOpenConns(1)
	case "oracle":
		// Oracle reports unquoted column names in upper case.
		db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToUpper, strings.ToUpper)
		fallthrough
	default:
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	logger.Get().Info("Connected to database", zap.String("driver", cfg.Driver))
	return db, nil
}
