package database

import (
	"fmt"

	"learnboard/internal/config"
	"learnboard/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"          // PostgreSQL driver ("postgres")
	_ "github.com/sijms/go-ora/v2" // Oracle driver (pure Go, "oracle")
	"go.uber.org/zap"
)

func init() {
	// go-ora registers as "oracle", which sqlx does not know; it takes :name binds like godror.
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// NewSQLXDB opens and pings the configured database.
func NewSQLXDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.DB.Driver, err)
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		db.SetMaxIdleConns(cfg.DB.MaxOpenConns / 2)
	}

	logger.Get().Info("Connected to database",
		zap.String("driver", cfg.DB.Driver),
		zap.String("host", cfg.DB.Host),
		zap.Int("port", cfg.DB.Port),
		zap.String("name", cfg.DB.DBName),
	)
	return db, nil
}
