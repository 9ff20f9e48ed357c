package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"usuarios-api/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB bundles the pgx pool with the GORM handle built on top of it.
type DB struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
	Gorm  *gorm.DB
}

// Ping checks the pool can still reach the server.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close releases the sql.DB wrapper first, then the pool under it.
func (db *DB) Close() {
	_ = db.sqlDB.Close()
	db.pool.Close()
}

// InitDB membuat koneksi database pool, lalu membungkusnya dengan GORM.
func InitDB(config utils.DatabaseConfig, log *zap.Logger, debug bool) (*DB, error) {
	connStr := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable host=%s port=%s",
		config.User, config.Password, config.Name, config.Host, config.Port)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	// Pool configuration
	poolConfig.MaxConns = config.MaxConns
	poolConfig.MinConns = min(2, config.MaxConns)
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := OpenGorm(postgres.New(postgres.Config{Conn: sqlDB}), log, debug)
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, err
	}

	return &DB{pool: pool, sqlDB: sqlDB, Gorm: gormDB}, nil
}

// OpenGorm opens a GORM handle over any dialector with the settings the
// repositories rely on: translated constraint errors and the zap query logger.
func OpenGorm(dialector gorm.Dialector, log *zap.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 NewGormLogger(log, debug),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return db, nil
}
