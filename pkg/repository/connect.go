package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/DrinkMenu/configs"
	"droscher.com/DrinkMenu/pkg/apperror"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC connect_timeout=%d",
		conf.DB.Host, conf.DB.User, conf.DB.Password, conf.DB.Database, conf.DB.Port, int(conf.DB.ConnectTimeout.Seconds()))

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	repo := &Repository{DB: db, Logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), conf.DB.ConnectTimeout)
	defer cancel()

	if err := repo.Ping(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, err
	}

	return repo, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return apperror.StorageUnavailable(err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return apperror.StorageUnavailable(err)
	}

	return nil
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// translateError maps driver failures onto the application error taxonomy. Integrity violations
// are reported as rejected writes, everything else as the store being unavailable.
func (r *Repository) translateError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	r.Logger.Error("storage operation failed", zap.Error(err))

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) || pgerrcode.IsDataException(pgErr.Code)) {
		return apperror.StorageRejected(err)
	}

	return apperror.StorageUnavailable(err)
}
